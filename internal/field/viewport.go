package field

import "math"

// Viewport is the drawable area of a host surface. Width and Height are
// logical pixels; the raster buffer is RasterWidth x RasterHeight device
// pixels.
type Viewport struct {
	Width, Height             float64
	Scale                     float64
	RasterWidth, RasterHeight int
}

// SizeViewport derives a viewport from a surface's displayed size and the
// display's pixel density. A missing density (zero, negative or NaN)
// counts as 1.
func SizeViewport(displayW, displayH, density float64) Viewport {
	if !(density > 0) || math.IsInf(density, 0) {
		density = 1
	}
	displayW = nonNegative(displayW)
	displayH = nonNegative(displayH)
	return Viewport{
		Width:        displayW,
		Height:       displayH,
		Scale:        density,
		RasterWidth:  int(math.Ceil(displayW * density)),
		RasterHeight: int(math.Ceil(displayH * density)),
	}
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// ToLogical converts device pixel coordinates to logical ones.
func (v Viewport) ToLogical(x, y float64) (float64, float64) {
	s := v.Scale
	if s <= 0 {
		s = 1
	}
	return x / s, y / s
}

func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
