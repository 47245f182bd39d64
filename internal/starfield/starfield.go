// Package starfield generates the static background stars.
package starfield

import "math/rand"

// Star is one fixed background point in screen space.
type Star struct {
	X, Y       float64
	Brightness uint8
	Radius     float64
}

// Generate returns n stars scattered over a w×h screen. The result depends
// only on the arguments, so the same seed always yields the same sky.
func Generate(seed int64, n, w, h int) []Star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:          float64(rng.Intn(w + 1)),
			Y:          float64(rng.Intn(h + 1)),
			Brightness: uint8(100 + rng.Intn(156)),
			Radius:     float64(1 + rng.Intn(3)),
		}
	}
	return stars
}
