package metrics

import "github.com/san-kum/plexus/internal/field"

type LinkCount struct {
	name    string
	sum     float64
	samples int
}

func NewLinkCount() *LinkCount {
	return &LinkCount{name: "links_mean"}
}

func (l *LinkCount) Name() string { return l.name }

func (l *LinkCount) Observe(f field.FrameStats) {
	l.sum += float64(f.Links)
	l.samples++
}

func (l *LinkCount) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *LinkCount) Reset() {
	l.sum = 0
	l.samples = 0
}

type MaxLinks struct {
	name string
	max  int
}

func NewMaxLinks() *MaxLinks {
	return &MaxLinks{name: "links_max"}
}

func (m *MaxLinks) Name() string { return m.name }

func (m *MaxLinks) Observe(f field.FrameStats) {
	if f.Links > m.max {
		m.max = f.Links
	}
}

func (m *MaxLinks) Value() float64 { return float64(m.max) }
func (m *MaxLinks) Reset()         { m.max = 0 }

// LinkAlpha is the mean opacity of drawn links, over frames that drew any.
type LinkAlpha struct {
	name    string
	sum     float64
	samples int
}

func NewLinkAlpha() *LinkAlpha {
	return &LinkAlpha{name: "link_alpha_mean"}
}

func (l *LinkAlpha) Name() string { return l.name }

func (l *LinkAlpha) Observe(f field.FrameStats) {
	if f.Links == 0 {
		return
	}
	l.sum += f.MeanAlpha
	l.samples++
}

func (l *LinkAlpha) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *LinkAlpha) Reset() {
	l.sum = 0
	l.samples = 0
}
