package config

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFollow    = "Earth"
	DefaultStars     = 100
	DefaultStarSeed  = 42
	DefaultSmoothing = SmoothingFrame
)

// Smoothing modes for the zoom animation.
const (
	SmoothingFrame = "frame"
	SmoothingTime  = "time"
)

// Settings is the startup configuration. Both JSON and YAML files decode
// into it.
type Settings struct {
	WindowWidth     int      `yaml:"window_width"`
	WindowHeight    int      `yaml:"window_height"`
	BackgroundColor RGB      `yaml:"background_color"`
	SunRadius       float64  `yaml:"sun_radius"`
	Planets         []Planet `yaml:"planets"`

	Follow    string `yaml:"follow,omitempty"`
	Smoothing string `yaml:"smoothing,omitempty"`
	Stars     *int   `yaml:"stars,omitempty"`
	StarSeed  *int64 `yaml:"star_seed,omitempty"`
}

// Planet is one body entry of the settings file.
type Planet struct {
	Name        string  `yaml:"name"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	Color       RGB     `yaml:"color"`
	Size        float64 `yaml:"size,omitempty"`
}

// RGB is a colour given as three integers in 0..255.
type RGB []int

func (c RGB) Color() color.RGBA {
	if len(c) != 3 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

func (c RGB) valid() bool {
	if len(c) != 3 {
		return false
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Load reads and validates the settings file at path. Any error is fatal
// to startup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes settings from JSON or YAML bytes, applies defaults to the
// optional fields and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := &Settings{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Follow == "" {
		s.Follow = DefaultFollow
	}
	if s.Smoothing == "" {
		s.Smoothing = DefaultSmoothing
	}
	if s.Stars == nil {
		n := DefaultStars
		s.Stars = &n
	}
	if s.StarSeed == nil {
		seed := int64(DefaultStarSeed)
		s.StarSeed = &seed
	}
}

// Validate checks required fields and value ranges.
func (s *Settings) Validate() error {
	switch {
	case s.WindowWidth == 0:
		return fieldErr(ErrMissingField, "window_width")
	case s.WindowWidth < 0:
		return fieldErr(ErrInvalidValue, "window_width")
	case s.WindowHeight == 0:
		return fieldErr(ErrMissingField, "window_height")
	case s.WindowHeight < 0:
		return fieldErr(ErrInvalidValue, "window_height")
	case s.BackgroundColor == nil:
		return fieldErr(ErrMissingField, "background_color")
	case !s.BackgroundColor.valid():
		return fieldErr(ErrInvalidValue, "background_color")
	case s.SunRadius == 0:
		return fieldErr(ErrMissingField, "sun_radius")
	case s.SunRadius < 0 || !finite(s.SunRadius):
		return fieldErr(ErrInvalidValue, "sun_radius")
	case len(s.Planets) == 0:
		return fieldErr(ErrMissingField, "planets")
	}

	if s.Smoothing != SmoothingFrame && s.Smoothing != SmoothingTime {
		return fieldErr(ErrInvalidValue, "smoothing")
	}
	if s.Stars != nil && *s.Stars < 0 {
		return fieldErr(ErrInvalidValue, "stars")
	}

	seen := make(map[string]bool, len(s.Planets))
	for i, p := range s.Planets {
		switch {
		case p.Name == "":
			return fieldErr(ErrMissingField, "planets[%d].name", i)
		case seen[p.Name]:
			return fieldErr(ErrDuplicateBody, "planets[%d].name", i)
		case p.OrbitRadius == 0:
			return fieldErr(ErrMissingField, "planets[%d].orbit_radius", i)
		case p.OrbitRadius < 0 || !finite(p.OrbitRadius):
			return fieldErr(ErrInvalidValue, "planets[%d].orbit_radius", i)
		case p.Color == nil:
			return fieldErr(ErrMissingField, "planets[%d].color", i)
		case !p.Color.valid():
			return fieldErr(ErrInvalidValue, "planets[%d].color", i)
		case p.Size < 0 || !finite(p.Size):
			return fieldErr(ErrInvalidValue, "planets[%d].size", i)
		}
		seen[p.Name] = true
	}
	return nil
}

// finite rejects the .nan and .inf values YAML accepts for floats.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// StarCount returns the configured number of background stars.
func (s *Settings) StarCount() int {
	if s.Stars == nil {
		return DefaultStars
	}
	return *s.Stars
}

func (s *Settings) Seed() int64 {
	if s.StarSeed == nil {
		return DefaultStarSeed
	}
	return *s.StarSeed
}

func (s *Settings) Center() (float64, float64) {
	return float64(s.WindowWidth / 2), float64(s.WindowHeight / 2)
}
