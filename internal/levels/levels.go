// Package levels implements fixed ladders of permitted values that are
// stepped through one rung at a time.
package levels

// Direction selects which way a ladder is stepped.
type Direction int

const (
	Decrease Direction = iota - 1
	_
	Increase
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	}
	return "none"
}

// Ladder is an ascending list of permitted values. Stepping clamps at
// both ends instead of wrapping.
type Ladder []float64

var (
	Speeds = Ladder{0.1, 0.5, 1, 2, 5, 10, 20, 30, 40, 50}
	Zooms  = Ladder{0.5, 1, 2, 5, 8}
)

// Index returns the position of v in the ladder, or -1.
func (l Ladder) Index(v float64) int {
	for i, lv := range l {
		if lv == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is one of the ladder's levels.
func (l Ladder) Contains(v float64) bool {
	return l.Index(v) >= 0
}

// Min returns the lowest level.
func (l Ladder) Min() float64 { return l[0] }

// Max returns the highest level.
func (l Ladder) Max() float64 { return l[len(l)-1] }

// Up returns the first level strictly greater than v. At or above the top
// v is returned unchanged.
func (l Ladder) Up(v float64) float64 {
	if len(l) == 0 {
		return v
	}
	if i := l.Index(v); i >= 0 {
		return l[min(i+1, len(l)-1)]
	}
	for _, lv := range l {
		if lv > v {
			return lv
		}
	}
	return v
}

// Down returns the last level strictly less than v. At or below the
// bottom v is returned unchanged.
func (l Ladder) Down(v float64) float64 {
	if len(l) == 0 {
		return v
	}
	if i := l.Index(v); i >= 0 {
		return l[max(i-1, 0)]
	}
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] < v {
			return l[i]
		}
	}
	return v
}

// Step moves v one rung in direction d.
func (l Ladder) Step(v float64, d Direction) float64 {
	switch d {
	case Increase:
		return l.Up(v)
	case Decrease:
		return l.Down(v)
	}
	return v
}
