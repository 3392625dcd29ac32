package metrics

import "github.com/san-kum/plexus/internal/field"

// Metric accumulates one scalar over a sequence of frames.
type Metric interface {
	Name() string
	Observe(f field.FrameStats)
	Value() float64
	Reset()
}

// Set fans frame statistics out to a group of metrics. It implements
// field.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Standard returns the metrics recorded for every stored run.
func Standard() *Set {
	return NewSet(NewLinkCount(), NewMaxLinks(), NewLinkAlpha(), NewRepelRate(), NewFrameRate())
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) OnFrame(f field.FrameStats) {
	for _, m := range s.metrics {
		m.Observe(f)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
