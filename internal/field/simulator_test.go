package field

import (
	"errors"
	"testing"
	"time"
)

func newTestSim(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := New(cfg, WithSeed(1))
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	return s
}

func TestNew_MaxCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = MaxCount
	s, err := New(cfg, WithSeed(1))
	if err != nil {
		t.Fatalf("New() at MaxCount error = %v", err)
	}
	s.Resize(200, 200, 1)
	if len(s.Particles()) != MaxCount {
		t.Errorf("particles = %d, want %d", len(s.Particles()), MaxCount)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Count = -1 }},
		{"count above limit", func(c *Config) { c.Count = MaxCount + 1 }},
		{"huge count", func(c *Config) { c.Count = 1 << 30 }},
		{"zero max dist", func(c *Config) { c.MaxDist = 0 }},
		{"negative speed", func(c *Config) { c.Speed = -0.1 }},
		{"line opacity above one", func(c *Config) { c.LineOpacity = 1.5 }},
		{"negative particle opacity", func(c *Config) { c.ParticleOpacity = -0.1 }},
		{"negative repel radius", func(c *Config) { c.RepelRadius = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSimulator_InertBeforeResize(t *testing.T) {
	s := newTestSim(t, DefaultConfig())
	rec := &recorder{}
	s.Tick(time.Now(), rec)
	if len(rec.ops) != 0 {
		t.Errorf("uninitialized simulator painted %d ops", len(rec.ops))
	}
	if s.State() != Uninitialized {
		t.Errorf("state = %v, want uninitialized", s.State())
	}
}

func TestSimulator_NilSurfaceIsNoop(t *testing.T) {
	s := newTestSim(t, DefaultConfig())
	s.Resize(400, 300, 1)
	before := s.Particles()
	s.Tick(time.Now(), nil)
	after := s.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("tick without a surface must not advance the store")
		}
	}
	if s.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", s.Ticks())
	}
}

func TestSimulator_RebuildOnResize(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSim(t, cfg)

	sizes := [][2]float64{{800, 600}, {1024, 768}, {320, 480}, {1920, 1080}}
	var prev []Particle
	for _, size := range sizes {
		s.Resize(size[0], size[1], 1)
		ps := s.Particles()
		if len(ps) != cfg.Count {
			t.Fatalf("size %v: store has %d particles, want %d", size, len(ps), cfg.Count)
		}
		for _, p := range ps {
			if !p.Pos.In(size[0], size[1]) {
				t.Errorf("size %v: particle outside new viewport: %v", size, p.Pos)
			}
			for _, old := range prev {
				if old.Pos == p.Pos {
					t.Errorf("size %v: position %v survived the rebuild", size, p.Pos)
				}
			}
		}
		prev = ps
	}
	if s.State() != Running {
		t.Errorf("state = %v, want running", s.State())
	}
}

func TestSimulator_TicketsAreCancelledByResize(t *testing.T) {
	s := newTestSim(t, DefaultConfig())
	s.Resize(400, 300, 1)
	rec := &recorder{}

	stale := s.Schedule()
	s.Resize(500, 300, 1)
	if s.Pending() {
		t.Error("resize must cancel the pending frame")
	}
	if s.Fire(stale, time.Now(), rec) {
		t.Error("stale ticket fired after resize")
	}
	if rec.clears != 0 {
		t.Errorf("stale ticket painted %d frames", rec.clears)
	}

	fresh := s.Schedule()
	if !s.Fire(fresh, time.Now(), rec) {
		t.Error("fresh ticket did not fire")
	}
	if s.Fire(fresh, time.Now(), rec) {
		t.Error("ticket fired twice")
	}
	if rec.clears != 1 {
		t.Errorf("expected 1 painted frame, got %d", rec.clears)
	}
}

func TestSimulator_TickNotifiesObservers(t *testing.T) {
	var frames []FrameStats
	cfg := DefaultConfig()
	s, err := New(cfg, WithSeed(2), WithObserver(ObserverFunc(func(f FrameStats) {
		frames = append(frames, f)
	})))
	if err != nil {
		t.Fatal(err)
	}
	s.Resize(200, 200, 1)
	s.SetPointer(100, 100)

	start := time.Unix(0, 0)
	s.Tick(start, Discard)
	s.Tick(start.Add(16*time.Millisecond), Discard)

	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Interval != 0 {
		t.Errorf("first frame interval = %v, want 0", frames[0].Interval)
	}
	if frames[1].Interval != 16*time.Millisecond {
		t.Errorf("second frame interval = %v, want 16ms", frames[1].Interval)
	}
	if frames[1].Tick != 2 || frames[1].Particles != cfg.Count {
		t.Errorf("unexpected stats: %+v", frames[1])
	}
	if frames[1].Links != len(s.Links()) {
		t.Errorf("links = %d, want %d", frames[1].Links, len(s.Links()))
	}
	if frames[1].Repelled == 0 {
		t.Error("expected particles near the centre pointer to be repelled")
	}
}

func TestSimulator_RenderDoesNotStep(t *testing.T) {
	s := newTestSim(t, DefaultConfig())
	s.Resize(300, 300, 1)
	before := s.Particles()
	rec := &recorder{}
	s.Render(rec)
	after := s.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("render advanced the store")
		}
	}
	if rec.clears != 1 || len(rec.fills) != len(before) {
		t.Errorf("render painted %d clears and %d discs", rec.clears, len(rec.fills))
	}
}

func TestSimulator_PointerDefaultsToIdle(t *testing.T) {
	s := newTestSim(t, DefaultConfig())
	if s.Pointer() != IdlePointer {
		t.Errorf("pointer = %v, want idle", s.Pointer())
	}
	s.SetPointer(3, 4)
	s.ClearPointer()
	if s.Pointer() != IdlePointer {
		t.Errorf("pointer = %v after clear, want idle", s.Pointer())
	}
}
