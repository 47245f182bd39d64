// Package orbit models bodies moving on circular orbits around a sun at
// the origin.
package orbit

import (
	"image/color"
	"math"
)

const (
	// ReferenceRadius is Earth's orbit radius; speeds are scaled relative to it.
	ReferenceRadius = 170.0

	// BaseAngularSpeed is the angular speed at ReferenceRadius in rad/s
	// (0.01 rad per frame at 60 Hz).
	BaseAngularSpeed = 0.6

	DefaultSize = 8.0
)

// Body is a single orbiting body.
type Body struct {
	Name         string
	OrbitRadius  float64
	AngularSpeed float64
	Angle        float64
	Size         float64
	Color        color.RGBA
}

// KeplerSpeed returns the angular speed for an orbit of the given radius.
// Speed falls off with the inverse square root of the radius.
func KeplerSpeed(radius float64) float64 {
	return BaseAngularSpeed * math.Sqrt(ReferenceRadius/radius)
}

// NewBody creates a body at angle zero with its angular speed derived
// from radius.
func NewBody(name string, radius, size float64, c color.RGBA) *Body {
	return &Body{
		Name:         name,
		OrbitRadius:  radius,
		AngularSpeed: KeplerSpeed(radius),
		Size:         size,
		Color:        c,
	}
}

// Advance moves the body along its orbit by elapsed seconds of real time
// scaled by timeScale.
func (b *Body) Advance(elapsed, timeScale float64) {
	b.Angle += b.AngularSpeed * timeScale * elapsed
}

// Position returns world coordinates relative to the sun.
func (b *Body) Position() (float64, float64) {
	return b.OrbitRadius * math.Cos(b.Angle), b.OrbitRadius * math.Sin(b.Angle)
}

// DisplayAngle returns Angle wrapped to [0, 2π).
func (b *Body) DisplayAngle() float64 {
	a := math.Mod(b.Angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Period returns the real time one revolution takes at timeScale.
func (b *Body) Period(timeScale float64) float64 {
	return 2 * math.Pi / (b.AngularSpeed * timeScale)
}
