package viz

import (
	"image/color"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a monochrome braille canvas. Its logical size in dots is
// (Width*2) x (Height*4); it implements field.Surface with one logical
// pixel per dot.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	// PeakAlpha is the alpha of the strongest possible link. Weaker links
	// are drawn sparser.
	PeakAlpha uint8
	// RadiusScale shrinks disc radii to dot size.
	RadiusScale float64
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:       w,
		Height:      h,
		Grid:        make([][]rune, h),
		PeakAlpha:   255,
		RadiusScale: 0.5,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.reset()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets the dot at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is set.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) reset() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Clear blanks the canvas. The background color is left to the terminal.
func (c *Canvas) Clear(color.NRGBA) { c.reset() }

// StrokeLine draws a dotted line whose gap grows as the link fades.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	c.DrawLine(round(x0), round(y0), round(x1), round(y1), c.stride(col.A))
}

// FillCircle sets every dot within the scaled radius, and at least the
// centre dot.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	r *= c.RadiusScale
	x, y := round(cx), round(cy)
	c.Set(x, y)
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (c *Canvas) stride(a uint8) int {
	peak := c.PeakAlpha
	if peak == 0 {
		peak = 255
	}
	rel := math.Min(1, float64(a)/float64(peak))
	return 1 + int((1-rel)*3)
}

// DrawLine draws a line using Bresenham's algorithm, setting every
// stride-th dot.
func (c *Canvas) DrawLine(x0, y0, x1, y1, stride int) {
	if stride < 1 {
		stride = 1
	}
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if n%stride == 0 {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(v float64) int {
	return int(math.Round(v))
}
