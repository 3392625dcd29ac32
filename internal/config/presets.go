package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]*Config{
	"hero": DefaultConfig(),
	"dense": withField(func(f *FieldConfig) {
		f.Count = 120
		f.MaxDist = 120
		f.LineOpacity = 0.1
	}),
	"sparse": withField(func(f *FieldConfig) {
		f.Count = 25
		f.MaxDist = 260
		f.LineOpacity = 0.25
		f.ParticleRadius = 3
	}),
	"calm": withField(func(f *FieldConfig) {
		f.Speed = 0.1
		f.RepelStrength = 0.4
		f.RepelRadius = 80
	}),
	"ember": withField(func(f *FieldConfig) {
		f.Color = "#ff7a3d"
		f.BgColor = "#140805"
		f.Speed = 0.6
	}),
}

func withField(mutate func(*FieldConfig)) *Config {
	cfg := DefaultConfig()
	mutate(&cfg.Field)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
