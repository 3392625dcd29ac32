package field

import (
	"image/color"
	"math/rand"
	"time"
)

// State is the lifecycle phase of a Simulator.
type State int

const (
	Uninitialized State = iota
	Running
	Rebuilding
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Rebuilding:
		return "rebuilding"
	}
	return "unknown"
}

// Ticket is a scheduled frame. It is only honored while the store it was
// issued for is still current.
type Ticket struct {
	gen   uint64
	valid bool
}

type Simulator struct {
	cfg       Config
	rng       *rand.Rand
	state     State
	view      Viewport
	particles []Particle
	links     []Link
	pointer   Pointer
	gen       uint64
	pending   bool
	ticks     uint64
	lastFrame time.Time
	observers []Observer
}

type Option func(*Simulator)

func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.observers = append(s.observers, o) }
}

func New(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		cfg:     cfg,
		pointer: IdlePointer,
		links:   make([]Link, 0, cfg.Count*(cfg.Count-1)/2),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s, nil
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Config() Config          { return s.cfg }
func (s *Simulator) State() State            { return s.state }
func (s *Simulator) Viewport() Viewport      { return s.view }
func (s *Simulator) Pointer() Pointer        { return s.pointer }
func (s *Simulator) Generation() uint64      { return s.gen }
func (s *Simulator) Ticks() uint64           { return s.ticks }
func (s *Simulator) Pending() bool           { return s.pending }
func (s *Simulator) SetPointer(x, y float64) { s.pointer = Pointer{X: x, Y: y} }
func (s *Simulator) ClearPointer()           { s.pointer = IdlePointer }

// Particles returns a copy of the current store.
func (s *Simulator) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Links returns a copy of the links painted by the last frame.
func (s *Simulator) Links() []Link {
	out := make([]Link, len(s.links))
	copy(out, s.links)
	return out
}

// Resize cancels any pending frame, resizes the viewport and replaces the
// store with freshly sampled particles. Callers schedule a new frame
// afterwards; tickets issued before the resize are stale.
func (s *Simulator) Resize(displayW, displayH, density float64) {
	s.cancel()
	s.state = Rebuilding

	s.view = SizeViewport(displayW, displayH, density)
	s.particles = Populate(s.rng, s.view.Width, s.view.Height, s.cfg)
	s.links = s.links[:0]
	s.lastFrame = time.Time{}

	s.state = Running
}

// Schedule requests the next frame.
func (s *Simulator) Schedule() Ticket {
	s.pending = true
	return Ticket{gen: s.gen, valid: true}
}

func (s *Simulator) cancel() {
	s.gen++
	s.pending = false
}

// Fire runs the frame t was issued for. Stale or already consumed tickets
// are dropped and Fire reports false.
func (s *Simulator) Fire(t Ticket, now time.Time, surface Surface) bool {
	if !t.valid || t.gen != s.gen || !s.pending || s.state != Running {
		return false
	}
	s.pending = false
	s.Tick(now, surface)
	return true
}

// Tick steps the store and paints the result. Without a running store or a
// surface the simulator is inert.
func (s *Simulator) Tick(now time.Time, surface Surface) {
	if s.state != Running || surface == nil {
		return
	}
	repelled := s.Step()
	s.paint(surface)

	var interval time.Duration
	if !s.lastFrame.IsZero() {
		interval = now.Sub(s.lastFrame)
	}
	s.lastFrame = now
	s.ticks++
	s.notify(FrameStats{
		Tick:      s.ticks,
		Interval:  interval,
		Particles: len(s.particles),
		Links:     len(s.links),
		Repelled:  repelled,
		MeanAlpha: meanAlpha(s.links),
	})
}

// Step advances the store one tick without painting.
func (s *Simulator) Step() int {
	if s.state != Running {
		return 0
	}
	return Step(s.particles, s.view.Width, s.view.Height, s.pointer, s.cfg)
}

// Render repaints the current store without advancing it.
func (s *Simulator) Render(surface Surface) {
	if s.state != Running || surface == nil {
		return
	}
	s.paint(surface)
}

func (s *Simulator) paint(surface Surface) {
	s.links = AppendLinks(s.links[:0], s.particles, s.cfg.MaxDist, s.cfg.LineOpacity)
	Paint(surface, s.particles, s.links, s.cfg)
}

func (s *Simulator) notify(f FrameStats) {
	for _, o := range s.observers {
		o.OnFrame(f)
	}
}

func meanAlpha(links []Link) float64 {
	if len(links) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range links {
		sum += l.Alpha
	}
	return sum / float64(len(links))
}

// Discard is a Surface that draws nothing, for headless runs.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear(color.NRGBA)                               {}
func (discard) StrokeLine(_, _, _, _, _ float64, _ color.NRGBA) {}
func (discard) FillCircle(_, _, _ float64, _ color.NRGBA)       {}
