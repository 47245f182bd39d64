// Package clock holds the simulation pause state and time scale.
package clock

import "github.com/san-kum/orrery/internal/levels"

const DefaultTimeScale = 1.0

// Clock holds the pause state and the time scale applied to elapsed
// frame time.
type Clock struct {
	Paused    bool
	TimeScale float64
}

// New returns a running clock at the default time scale.
func New() *Clock {
	return &Clock{TimeScale: DefaultTimeScale}
}

func (c *Clock) TogglePause() {
	c.Paused = !c.Paused
}

// StepSpeed moves the time scale one level up or down, holding at the ends.
func (c *Clock) StepSpeed(d levels.Direction) {
	c.TimeScale = levels.Speeds.Step(c.TimeScale, d)
}

// Elapsed returns the simulated time covered by a frame of dt seconds.
// ok is false when paused, in which case bodies must not be advanced.
func (c *Clock) Elapsed(dt float64) (scaled float64, ok bool) {
	if c.Paused {
		return 0, false
	}
	return dt * c.TimeScale, true
}

func (c *Clock) Status() string {
	if c.Paused {
		return "Paused"
	}
	return "Running"
}
