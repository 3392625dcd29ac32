package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// SVG is a field.Surface that records one frame as an SVG document.
// Clear starts a new frame, so only the most recent frame is kept.
type SVG struct {
	Width, Height float64
	bg            color.NRGBA
	body          strings.Builder
	lines         int
	circles       int
}

func NewSVG(width, height float64) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Clear(bg color.NRGBA) {
	s.bg = bg
	s.body.Reset()
	s.lines = 0
	s.circles = 0
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>
`, x0, y0, x1, y1, hex(c), opacity(c), width))
	s.lines++
}

func (s *SVG) FillCircle(cx, cy, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, cx, cy, r, hex(c), opacity(c)))
	s.circles++
}

func (s *SVG) Lines() int   { return s.lines }
func (s *SVG) Circles() int { return s.circles }

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-linecap="round">
`, s.Width, s.Height, s.Width, s.Height, hex(s.bg)))
	sb.WriteString(s.body.String())
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *SVG) Save(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0644)
}

// hex formats c as #rrggbb; alpha goes into the opacity attributes.
func hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}
