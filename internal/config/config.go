package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/plexus/internal/field"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
	// DefaultBackend leaves the choice to the window backend the binary was
	// built with.
	DefaultBackend = ""
	DefaultTitle   = "plexus"
	DefaultColor   = "#00d4ff"
	DefaultBgColor = "#05091a"
)

var ErrInvalidColor = errors.New("config: invalid color")

type Config struct {
	Seed   int64        `yaml:"seed"`
	Field  FieldConfig  `yaml:"field"`
	Window WindowConfig `yaml:"window"`
}

type FieldConfig struct {
	Count           int     `yaml:"count"`
	MaxDist         float64 `yaml:"max_dist"`
	Speed           float64 `yaml:"speed"`
	ParticleRadius  float64 `yaml:"particle_radius"`
	LineOpacity     float64 `yaml:"line_opacity"`
	ParticleOpacity float64 `yaml:"particle_opacity"`
	LineWidth       float64 `yaml:"line_width"`
	RepelRadius     float64 `yaml:"repel_radius"`
	RepelStrength   float64 `yaml:"repel_strength"`
	Color           string  `yaml:"color"`
	BgColor         string  `yaml:"bg_color"`
}

type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	FPS     int    `yaml:"fps"`
	Title   string `yaml:"title"`
	Backend string `yaml:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Count:           field.DefaultCount,
			MaxDist:         field.DefaultMaxDist,
			Speed:           field.DefaultSpeed,
			ParticleRadius:  field.DefaultParticleRadius,
			LineOpacity:     field.DefaultLineOpacity,
			ParticleOpacity: field.DefaultParticleOpacity,
			LineWidth:       field.DefaultLineWidth,
			RepelRadius:     field.DefaultRepelRadius,
			RepelStrength:   field.DefaultRepelStrength,
			Color:           DefaultColor,
			BgColor:         DefaultBgColor,
		},
		Window: WindowConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			FPS:     DefaultFPS,
			Title:   DefaultTitle,
			Backend: DefaultBackend,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base. Keys missing from the file keep
// base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FieldConfig converts the file representation into a validated
// field.Config.
func (c *Config) FieldConfig() (field.Config, error) {
	fg, err := ParseColor(c.Field.Color)
	if err != nil {
		return field.Config{}, err
	}
	bg, err := ParseColor(c.Field.BgColor)
	if err != nil {
		return field.Config{}, err
	}
	fc := field.Config{
		Count:           c.Field.Count,
		MaxDist:         c.Field.MaxDist,
		Speed:           c.Field.Speed,
		ParticleRadius:  c.Field.ParticleRadius,
		LineOpacity:     c.Field.LineOpacity,
		ParticleOpacity: c.Field.ParticleOpacity,
		LineWidth:       c.Field.LineWidth,
		RepelRadius:     c.Field.RepelRadius,
		RepelStrength:   c.Field.RepelStrength,
		Color:           fg,
		BgColor:         bg,
	}
	if err := fc.Validate(); err != nil {
		return field.Config{}, err
	}
	return fc, nil
}

// ParseColor accepts a #rrggbb hex string and returns an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
