package field

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

const (
	DefaultCount           = 60
	DefaultMaxDist         = 180.0
	DefaultSpeed           = 0.35
	DefaultParticleRadius  = 2.0
	DefaultLineOpacity     = 0.15
	DefaultParticleOpacity = 0.6
	DefaultLineWidth       = 0.8
	DefaultRepelRadius     = 120.0
	DefaultRepelStrength   = 1.2

	// MaxCount bounds the store; the link pass is quadratic in the count.
	MaxCount = 1000

	// RadiusJitter is the upper bound of the random radius added per particle.
	RadiusJitter = 1.5
)

var (
	DefaultColor   = color.NRGBA{R: 0, G: 212, B: 255, A: 255}
	DefaultBgColor = color.NRGBA{R: 5, G: 9, B: 26, A: 255}
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) String() string       { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }
func (v Vec2) In(w, h float64) bool { return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h }

// Particle is one point-mass of the field. Vel is in logical pixels per tick
// and never changes after creation.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Pointer is the repulsion target. IdlePointer keeps it far enough away
// from any surface that no particle is ever within the repulsion radius.
type Pointer = Vec2

var IdlePointer = Pointer{X: -9999, Y: -9999}

// Config is the immutable parameter set of one field.
type Config struct {
	Count           int
	MaxDist         float64
	Speed           float64
	ParticleRadius  float64
	LineOpacity     float64
	ParticleOpacity float64
	LineWidth       float64
	RepelRadius     float64
	RepelStrength   float64
	Color           color.NRGBA
	BgColor         color.NRGBA
}

func DefaultConfig() Config {
	return Config{
		Count:           DefaultCount,
		MaxDist:         DefaultMaxDist,
		Speed:           DefaultSpeed,
		ParticleRadius:  DefaultParticleRadius,
		LineOpacity:     DefaultLineOpacity,
		ParticleOpacity: DefaultParticleOpacity,
		LineWidth:       DefaultLineWidth,
		RepelRadius:     DefaultRepelRadius,
		RepelStrength:   DefaultRepelStrength,
		Color:           DefaultColor,
		BgColor:         DefaultBgColor,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Count < 0 || c.Count > MaxCount:
		return fmt.Errorf("%w: count must be in [0,%d], got %d", ErrInvalidConfig, MaxCount, c.Count)
	case !(c.MaxDist > 0):
		return fmt.Errorf("%w: max_dist must be positive, got %f", ErrInvalidConfig, c.MaxDist)
	case c.Speed < 0 || math.IsNaN(c.Speed):
		return fmt.Errorf("%w: speed must be non-negative, got %f", ErrInvalidConfig, c.Speed)
	case c.ParticleRadius < 0 || math.IsNaN(c.ParticleRadius):
		return fmt.Errorf("%w: particle_radius must be non-negative, got %f", ErrInvalidConfig, c.ParticleRadius)
	case !unit(c.LineOpacity):
		return fmt.Errorf("%w: line_opacity must be in [0,1], got %f", ErrInvalidConfig, c.LineOpacity)
	case !unit(c.ParticleOpacity):
		return fmt.Errorf("%w: particle_opacity must be in [0,1], got %f", ErrInvalidConfig, c.ParticleOpacity)
	case c.LineWidth < 0 || math.IsNaN(c.LineWidth):
		return fmt.Errorf("%w: line_width must be non-negative, got %f", ErrInvalidConfig, c.LineWidth)
	case c.RepelRadius < 0 || math.IsNaN(c.RepelRadius):
		return fmt.Errorf("%w: repel_radius must be non-negative, got %f", ErrInvalidConfig, c.RepelRadius)
	case c.RepelStrength < 0 || math.IsNaN(c.RepelStrength):
		return fmt.Errorf("%w: repel_strength must be non-negative, got %f", ErrInvalidConfig, c.RepelStrength)
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

// Link is a drawable connection between particles I < J.
type Link struct {
	I, J  int
	Dist  float64
	Alpha float64
}

// FrameStats summarizes one tick for observers.
type FrameStats struct {
	Tick      uint64
	Interval  time.Duration
	Particles int
	Links     int
	Repelled  int
	MeanAlpha float64
}

type Observer interface {
	OnFrame(f FrameStats)
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func(FrameStats)

func (fn ObserverFunc) OnFrame(f FrameStats) { fn(f) }
