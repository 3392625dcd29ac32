package viz

import (
	"image/color"
	"strings"
	"testing"
)

func TestCanvasSetAndIsSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("dot (3,5) not set")
	}
	if c.IsSet(2, 5) {
		t.Error("neighbour dot set")
	}
	if got := c.Grid[1][1]; got != brailleBlank|0x20 {
		t.Errorf("cell = %U, want %U", got, brailleBlank|0x20)
	}

	// out of range writes are ignored
	c.Set(-1, 0)
	c.Set(100, 100)
	if c.IsSet(-1, 0) || c.IsSet(100, 100) {
		t.Error("out of range dot reported set")
	}
}

func TestCanvasDots(t *testing.T) {
	w, h := NewCanvas(10, 3).Dots()
	if w != 20 || h != 12 {
		t.Errorf("Dots() = %d,%d, want 20,12", w, h)
	}
	if c := NewCanvas(0, -1); c.Width != 1 || c.Height != 1 {
		t.Errorf("degenerate canvas = %dx%d, want 1x1", c.Width, c.Height)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		stride int
		want   []int
	}{
		{"solid", 1, []int{0, 1, 2, 3, 4, 5, 6}},
		{"dotted", 3, []int{0, 3, 6}},
		{"zero stride", 0, []int{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(8, 1)
			c.DrawLine(0, 1, 6, 1, tt.stride)
			set := 0
			for x := 0; x < 16; x++ {
				if c.IsSet(x, 1) {
					set++
				}
			}
			if set != len(tt.want) {
				t.Errorf("set dots = %d, want %d", set, len(tt.want))
			}
			for _, x := range tt.want {
				if !c.IsSet(x, 1) {
					t.Errorf("dot %d not set", x)
				}
			}
		})
	}
}

func TestCanvasStrokeFadesWithAlpha(t *testing.T) {
	c := NewCanvas(20, 1)
	c.PeakAlpha = 200
	if got := c.stride(200); got != 1 {
		t.Errorf("stride(peak) = %d, want 1", got)
	}
	if got := c.stride(1); got != 3 {
		t.Errorf("stride(faint) = %d, want 3", got)
	}
	if got := c.stride(255); got != 1 {
		t.Errorf("stride(above peak) = %d, want 1", got)
	}

	c.StrokeLine(0, 0, 10, 0, 1, color.NRGBA{A: 0})
	if c.IsSet(0, 0) {
		t.Error("transparent stroke drew dots")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(6, 8, 0.1, color.NRGBA{A: 255})
	if !c.IsSet(6, 8) {
		t.Error("centre dot not set for a tiny disc")
	}

	c.Clear(color.NRGBA{})
	c.FillCircle(6, 8, 4, color.NRGBA{A: 255})
	for _, d := range [][2]int{{6, 8}, {8, 8}, {4, 8}, {6, 10}, {6, 6}} {
		if !c.IsSet(d[0], d[1]) {
			t.Errorf("dot %v not set", d)
		}
	}
	if c.IsSet(9, 8) {
		t.Error("dot outside scaled radius set")
	}
}

func TestCanvasClearAndString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	c.Clear(color.NRGBA{})
	if c.IsSet(0, 0) {
		t.Error("Clear left dot set")
	}
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "⠀⠀⠀" {
		t.Errorf("row = %q", lines[0])
	}
}
