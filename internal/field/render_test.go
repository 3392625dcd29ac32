package field

import (
	"image/color"
	"testing"
)

func TestPaint_Order(t *testing.T) {
	cfg := DefaultConfig()
	ps := []Particle{
		{Pos: Vec2{0, 0}, Radius: 2},
		{Pos: Vec2{50, 0}, Radius: 3},
		{Pos: Vec2{500, 0}, Radius: 2.5},
	}
	links := AppendLinks(nil, ps, cfg.MaxDist, cfg.LineOpacity)

	rec := &recorder{}
	Paint(rec, ps, links, cfg)

	want := []string{"clear", "line", "circle", "circle", "circle"}
	if len(rec.ops) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, rec.ops)
	}
	for i := range want {
		if rec.ops[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, rec.ops[i], want[i])
		}
	}

	line := rec.strokes[0]
	if line.width != cfg.LineWidth {
		t.Errorf("line width = %v, want %v", line.width, cfg.LineWidth)
	}
	if line.x0 != 0 || line.x1 != 50 {
		t.Errorf("line endpoints = %v..%v", line.x0, line.x1)
	}
	if rec.fills[1].r != 3 {
		t.Errorf("disc radius = %v, want 3", rec.fills[1].r)
	}
	wantDisc := WithAlpha(cfg.Color, cfg.ParticleOpacity)
	if rec.fills[0].c != wantDisc {
		t.Errorf("disc color = %v, want %v", rec.fills[0].c, wantDisc)
	}
}

func TestPaint_DoesNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	ps := []Particle{{Pos: Vec2{1, 2}, Vel: Vec2{3, 4}, Radius: 2}}
	before := ps[0]
	Paint(&recorder{}, ps, nil, cfg)
	if ps[0] != before {
		t.Errorf("Paint mutated the store: %v -> %v", before, ps[0])
	}
}

func TestPaint_NilSurface(t *testing.T) {
	Paint(nil, []Particle{{}}, nil, DefaultConfig())
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	tests := []struct {
		a    float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := WithAlpha(c, tt.a)
		if got.A != tt.want || got.R != 1 || got.G != 2 || got.B != 3 {
			t.Errorf("WithAlpha(%v) = %v, want alpha %d", tt.a, got, tt.want)
		}
	}
}
