package field

import "image/color"

type strokeOp struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

type fillOp struct {
	cx, cy, r float64
	c         color.NRGBA
}

// recorder is a Surface that remembers every draw call in order.
type recorder struct {
	ops     []string
	clears  int
	strokes []strokeOp
	fills   []fillOp
}

func (r *recorder) Clear(bg color.NRGBA) {
	r.ops = append(r.ops, "clear")
	r.clears++
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.ops = append(r.ops, "line")
	r.strokes = append(r.strokes, strokeOp{x0, y0, x1, y1, width, c})
}

func (r *recorder) FillCircle(cx, cy, r2 float64, c color.NRGBA) {
	r.ops = append(r.ops, "circle")
	r.fills = append(r.fills, fillOp{cx, cy, r2, c})
}
