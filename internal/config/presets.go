package config

var presets = map[string]func() *Settings{
	"solar": DefaultSettings,
	"inner": func() *Settings {
		s := DefaultSettings()
		s.Planets = s.Planets[:4]
		return s
	},
	"outer": func() *Settings {
		s := DefaultSettings()
		s.Planets = s.Planets[4:]
		s.Follow = "Jupiter"
		return s
	},
}

// DefaultSettings returns the built-in eight planet system.
func DefaultSettings() *Settings {
	s := &Settings{
		WindowWidth:     1200,
		WindowHeight:    800,
		BackgroundColor: RGB{0, 0, 20},
		SunRadius:       30,
		Planets: []Planet{
			{Name: "Mercury", OrbitRadius: 60, Color: RGB{169, 169, 169}},
			{Name: "Venus", OrbitRadius: 110, Color: RGB{255, 198, 73}},
			{Name: "Earth", OrbitRadius: 170, Color: RGB{100, 149, 237}},
			{Name: "Mars", OrbitRadius: 220, Color: RGB{188, 39, 50}},
			{Name: "Jupiter", OrbitRadius: 290, Color: RGB{216, 202, 157}},
			{Name: "Saturn", OrbitRadius: 350, Color: RGB{227, 224, 192}},
			{Name: "Uranus", OrbitRadius: 400, Color: RGB{172, 229, 238}},
			{Name: "Neptune", OrbitRadius: 450, Color: RGB{63, 84, 186}},
		},
	}
	s.applyDefaults()
	return s
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Settings {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
