package metrics

import (
	"time"

	"github.com/san-kum/plexus/internal/field"
)

// RepelRate is the fraction of particle updates that were pushed by the
// pointer.
type RepelRate struct {
	name      string
	repelled  int
	particles int
}

func NewRepelRate() *RepelRate {
	return &RepelRate{name: "repel_rate"}
}

func (r *RepelRate) Name() string { return r.name }

func (r *RepelRate) Observe(f field.FrameStats) {
	r.repelled += f.Repelled
	r.particles += f.Particles
}

func (r *RepelRate) Value() float64 {
	if r.particles == 0 {
		return 0
	}
	return float64(r.repelled) / float64(r.particles)
}

func (r *RepelRate) Reset() {
	r.repelled = 0
	r.particles = 0
}

// FrameRate is the mean frames per second implied by the host's frame
// intervals. The first frame has no interval and is skipped.
type FrameRate struct {
	name    string
	total   time.Duration
	samples int
}

func NewFrameRate() *FrameRate {
	return &FrameRate{name: "fps"}
}

func (r *FrameRate) Name() string { return r.name }

func (r *FrameRate) Observe(f field.FrameStats) {
	if f.Interval <= 0 {
		return
	}
	r.total += f.Interval
	r.samples++
}

func (r *FrameRate) Value() float64 {
	if r.samples == 0 || r.total <= 0 {
		return 0
	}
	return float64(r.samples) / r.total.Seconds()
}

func (r *FrameRate) Reset() {
	r.total = 0
	r.samples = 0
}
