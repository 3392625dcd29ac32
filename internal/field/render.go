package field

import (
	"image/color"
	"math"
)

// Surface is a 2D vector drawing target. Coordinates are logical pixels;
// implementations apply their own device scale.
type Surface interface {
	Clear(bg color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}

// Paint clears s and draws the frame: every link first, then every disc on
// top. It only reads ps and links.
func Paint(s Surface, ps []Particle, links []Link, cfg Config) {
	if s == nil {
		return
	}
	s.Clear(cfg.BgColor)

	for _, l := range links {
		a, b := ps[l.I].Pos, ps[l.J].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LineWidth, WithAlpha(cfg.Color, l.Alpha))
	}

	disc := WithAlpha(cfg.Color, cfg.ParticleOpacity)
	for _, p := range ps {
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, disc)
	}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(a * 255))
	return c
}
