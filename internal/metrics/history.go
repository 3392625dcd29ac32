package metrics

import "github.com/san-kum/plexus/internal/field"

// History keeps the most recent frames for plotting and export.
type History struct {
	capacity int
	frames   []field.FrameStats
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity, frames: make([]field.FrameStats, 0, capacity)}
}

func (h *History) OnFrame(f field.FrameStats) {
	if len(h.frames) == h.capacity {
		copy(h.frames, h.frames[1:])
		h.frames = h.frames[:len(h.frames)-1]
	}
	h.frames = append(h.frames, f)
}

func (h *History) Frames() []field.FrameStats {
	out := make([]field.FrameStats, len(h.frames))
	copy(out, h.frames)
	return out
}

func (h *History) Len() int { return len(h.frames) }

func (h *History) Reset() { h.frames = h.frames[:0] }

// Links returns the link count series.
func (h *History) Links() []float64 {
	out := make([]float64, len(h.frames))
	for i, f := range h.frames {
		out[i] = float64(f.Links)
	}
	return out
}
