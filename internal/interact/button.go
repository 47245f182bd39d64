package interact

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r. The left and top edges
// are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is a clickable toolbar rectangle bound to an action.
type Button struct {
	Action Action
	Rect   Rect
	Label  string
}

const (
	labelPause = "Pause"
	labelStart = "Start"
)

// Layout returns the toolbar along the top-left corner of the window.
func Layout(followName string) []*Button {
	return []*Button{
		{ActionTogglePause, Rect{10, 10, 100, 40}, labelPause},
		{ActionSpeedDown, Rect{120, 10, 40, 40}, "<<"},
		{ActionSpeedUp, Rect{170, 10, 40, 40}, ">>"},
		{ActionZoomIn, Rect{220, 10, 40, 40}, "+"},
		{ActionZoomOut, Rect{270, 10, 40, 40}, "-"},
		{ActionResetView, Rect{320, 10, 100, 40}, "Reset View"},
		{ActionFollow, Rect{430, 10, 100, 40}, "Follow " + followName},
	}
}

// Hit returns the first button containing (x, y).
func Hit(buttons []*Button, x, y float64) *Button {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b
		}
	}
	return nil
}
