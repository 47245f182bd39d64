// Package camera tracks the 2D view transform: pan offset, animated zoom
// and an optional body to keep centered.
package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/levels"
)

const (
	DefaultScale = 1.0
	FollowScale  = 2.0

	// ZoomRate is the fraction of the remaining zoom distance covered per step.
	ZoomRate = 0.05
	// ZoomEpsilon is the distance below which the scale snaps to its target.
	ZoomEpsilon = 0.01
	// ReferenceFPS is the frame rate ZoomRate was tuned for.
	ReferenceFPS = 60.0
)

// Smoothing selects how zoom interpolation relates to elapsed time.
type Smoothing int

const (
	// SmoothPerFrame applies ZoomRate once per Tick regardless of dt, so
	// the animation runs faster at higher frame rates.
	SmoothPerFrame Smoothing = iota
	// SmoothPerSecond scales the rate by dt so the animation takes the same
	// wall time at any frame rate.
	SmoothPerSecond
)

const noFollow = -1

// Camera is the view state: pan offset, current and target zoom, and
// the optional follow target.
type Camera struct {
	PanX, PanY float64
	Scale      float64
	Target     float64
	Smoothing  Smoothing

	centerX, centerY float64
	follow           int
}

// New returns a camera centered on (cx, cy) at the default scale.
func New(cx, cy float64) *Camera {
	return &Camera{
		PanX:    cx,
		PanY:    cy,
		Scale:   DefaultScale,
		Target:  DefaultScale,
		centerX: cx,
		centerY: cy,
		follow:  noFollow,
	}
}

// Center returns the viewport center the pan resets to.
func (c *Camera) Center() (float64, float64) {
	return c.centerX, c.centerY
}

// SetTargetScale sets the scale the zoom animation heads toward.
// Non-positive levels are ignored.
func (c *Camera) SetTargetScale(level float64) {
	if level <= 0 {
		return
	}
	c.Target = level
}

// StepZoom moves the target one zoom level in or out, holding at the ends.
func (c *Camera) StepZoom(d levels.Direction) {
	c.Target = levels.Zooms.Step(c.Target, d)
}

// Tick advances the zoom animation by one frame of dt seconds.
func (c *Camera) Tick(dt float64) {
	diff := c.Target - c.Scale
	if math.Abs(diff) <= ZoomEpsilon {
		c.Scale = c.Target
		return
	}
	c.Scale += diff * c.rate(dt)
}

func (c *Camera) rate(dt float64) float64 {
	if c.Smoothing == SmoothPerFrame {
		return ZoomRate
	}
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-ZoomRate, dt*ReferenceFPS)
}

// Follow makes the camera track body i.
func (c *Camera) Follow(i int) {
	if i < 0 {
		c.follow = noFollow
		return
	}
	c.follow = i
}

func (c *Camera) Unfollow() {
	c.follow = noFollow
}

// Following returns the followed body index.
func (c *Camera) Following() (int, bool) {
	return c.follow, c.follow != noFollow
}

// Track recenters the view on a followed body at world position (x, y)
// using the current, possibly animating, scale.
func (c *Camera) Track(x, y float64) {
	c.PanX = c.centerX - x*c.Scale
	c.PanY = c.centerY - y*c.Scale
}

// Reset recenters the sun, restores the default zoom target and drops
// any follow target.
func (c *Camera) Reset() {
	c.PanX = c.centerX
	c.PanY = c.centerY
	c.Target = DefaultScale
	c.follow = noFollow
}

// WorldToScreen maps world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return c.PanX + x*c.Scale, c.PanY + y*c.Scale
}

// ScreenLength scales a world distance to screen pixels.
func (c *Camera) ScreenLength(r float64) float64 {
	return r * c.Scale
}
