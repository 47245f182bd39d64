package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/config"
)

// displaySizes overrides configured sizes for the known planets. Real
// size ratios are far too large to be readable.
var displaySizes = map[string]float64{
	"Mercury": 4,
	"Venus":   10,
	"Earth":   11,
	"Mars":    6,
	"Jupiter": 24,
	"Saturn":  20,
	"Uranus":  18,
	"Neptune": 17,
}

// System is the fixed set of bodies created at startup.
type System struct {
	Bodies []*Body
}

// NewSystem builds the bodies described by the settings, spreading their
// starting angles evenly around the sun.
func NewSystem(s *config.Settings) *System {
	n := len(s.Planets)
	sys := &System{Bodies: make([]*Body, 0, n)}
	for i, p := range s.Planets {
		size, ok := displaySizes[p.Name]
		if !ok {
			size = p.Size
		}
		if size <= 0 {
			size = DefaultSize
		}
		b := NewBody(p.Name, p.OrbitRadius, size, p.Color.Color())
		b.Angle = float64(i) * 2 * math.Pi / float64(n)
		sys.Bodies = append(sys.Bodies, b)
	}
	return sys
}

// Len returns the number of bodies.
func (s *System) Len() int { return len(s.Bodies) }

// Index returns the index of the named body, or -1.
func (s *System) Index(name string) int {
	for i, b := range s.Bodies {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Body returns the body at i, or nil if i is out of range.
func (s *System) Body(i int) *Body {
	if i < 0 || i >= len(s.Bodies) {
		return nil
	}
	return s.Bodies[i]
}

func (s *System) Advance(elapsed, timeScale float64) {
	for _, b := range s.Bodies {
		b.Advance(elapsed, timeScale)
	}
}

// Angles returns a copy of every body's current angle.
func (s *System) Angles() []float64 {
	out := make([]float64, len(s.Bodies))
	for i, b := range s.Bodies {
		out[i] = b.Angle
	}
	return out
}
