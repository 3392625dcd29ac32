package field

import (
	"context"
	"time"
)

// Event is host input delivered to a Loop between frames.
type Event interface {
	apply(s *Simulator) (rebuilt bool)
}

// ResizeEvent reports a new displayed size and pixel density.
type ResizeEvent struct {
	Width, Height float64
	Density       float64
}

func (e ResizeEvent) apply(s *Simulator) bool {
	s.Resize(e.Width, e.Height, e.Density)
	return true
}

// PointerEvent moves the repulsion target, in logical surface coordinates.
type PointerEvent struct {
	X, Y float64
}

func (e PointerEvent) apply(s *Simulator) bool {
	s.SetPointer(e.X, e.Y)
	return false
}

// PointerLeaveEvent parks the repulsion target at IdlePointer.
type PointerLeaveEvent struct{}

func (PointerLeaveEvent) apply(s *Simulator) bool {
	s.ClearPointer()
	return false
}

// Loop drives a Simulator from a host's frame signal and input events on a
// single goroutine, so input never lands in the middle of a frame.
type Loop struct {
	Sim     *Simulator
	Surface Surface
	Frames  <-chan time.Time
	Events  <-chan Event
}

// Run blocks until ctx is done or Frames is closed. A resize cancels the
// scheduled frame and a new one is scheduled only after the store has been
// rebuilt. Without a surface Run does nothing.
func (l *Loop) Run(ctx context.Context) error {
	if l.Surface == nil || l.Sim == nil {
		return nil
	}
	events := l.Events
	ticket := l.Sim.Schedule()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.apply(l.Sim) {
				ticket = l.Sim.Schedule()
			}
		case now, ok := <-l.Frames:
			if !ok {
				return nil
			}
			if l.Sim.Fire(ticket, now, l.Surface) {
				ticket = l.Sim.Schedule()
			}
		}
	}
}
