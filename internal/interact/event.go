package interact

import "fmt"

type EventKind int

const (
	EventClick EventKind = iota
	EventKey
)

// Event is one discrete user input: a pointer click at a screen position
// or a named key press.
type Event struct {
	Kind EventKind
	X, Y float64
	Key  string
}

func Click(x, y float64) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

func Key(name string) Event {
	return Event{Kind: EventKey, Key: name}
}

func (e Event) String() string {
	if e.Kind == EventKey {
		return "key " + e.Key
	}
	return fmt.Sprintf("click (%.0f, %.0f)", e.X, e.Y)
}

// Key names shared by the input backends.
const (
	KeySpace = "space"
	KeyPlus  = "+"
	KeyEqual = "="
	KeyMinus = "-"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyR     = "r"
	KeyE     = "e"
)

// DefaultKeys binds keys to actions.
var DefaultKeys = map[string]Action{
	KeySpace: ActionTogglePause,
	KeyPlus:  ActionZoomIn,
	KeyEqual: ActionZoomIn,
	KeyMinus: ActionZoomOut,
	KeyUp:    ActionSpeedUp,
	KeyDown:  ActionSpeedDown,
	KeyR:     ActionResetView,
	KeyE:     ActionFollow,
}
