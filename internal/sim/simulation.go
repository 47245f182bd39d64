// Package sim owns the whole simulation state and advances it one frame
// at a time.
package sim

import (
	"fmt"

	"github.com/go-kit/kit/log"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/starfield"
)

// Simulation aggregates every piece of mutable state. It is owned by the
// goroutine running the frame loop.
type Simulation struct {
	Settings   *config.Settings
	System     *orbit.System
	Camera     *camera.Camera
	Clock      *clock.Clock
	Controller *interact.Controller
	Stars      []starfield.Star

	// Time is the simulated time elapsed, time scale applied.
	Time float64
	// Frames counts calls to Update.
	Frames int
}

// New builds a simulation from validated settings.
func New(s *config.Settings, logger log.Logger) *Simulation {
	cx, cy := s.Center()
	cam := camera.New(cx, cy)
	if s.Smoothing == config.SmoothingTime {
		cam.Smoothing = camera.SmoothPerSecond
	}

	sys := orbit.NewSystem(s)
	clk := clock.New()

	return &Simulation{
		Settings:   s,
		System:     sys,
		Camera:     cam,
		Clock:      clk,
		Controller: interact.New(clk, cam, sys, s.Follow, logger),
		Stars:      starfield.Generate(s.Seed(), s.StarCount(), s.WindowWidth, s.WindowHeight),
	}
}

// Update runs one frame: input, zoom animation, orbits, then follow.
// dt is the real time since the previous frame in seconds.
func (s *Simulation) Update(dt float64, events []interact.Event) {
	s.Controller.HandleAll(events)

	s.Camera.Tick(dt)

	if scaled, ok := s.Clock.Elapsed(dt); ok {
		s.System.Advance(dt, s.Clock.TimeScale)
		s.Time += scaled
	}

	s.track()
	s.Frames++
}

// track keeps the followed body centered. It runs while paused too.
func (s *Simulation) track() {
	i, ok := s.Camera.Following()
	if !ok {
		return
	}
	b := s.System.Body(i)
	if b == nil {
		s.Camera.Unfollow()
		return
	}
	s.Camera.Track(b.Position())
}

// Followed returns the followed body, or nil.
func (s *Simulation) Followed() *orbit.Body {
	i, ok := s.Camera.Following()
	if !ok {
		return nil
	}
	return s.System.Body(i)
}

// Status returns the HUD lines.
func (s *Simulation) Status() []string {
	follow := "Free view"
	if b := s.Followed(); b != nil {
		follow = "Following: " + b.Name
	}
	return []string{
		fmt.Sprintf("Speed: %.1fx", s.Clock.TimeScale),
		fmt.Sprintf("Scale: %.2f", s.Camera.Scale),
		s.Clock.Status(),
		follow,
	}
}
