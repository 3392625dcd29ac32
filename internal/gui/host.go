package gui

import (
	"fmt"
	"log"
	"time"

	"github.com/san-kum/plexus/internal/export"
	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/metrics"
)

type Options struct {
	Width, Height int
	FPS           int
	Title         string
	SnapshotPath  string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Title == "" {
		o.Title = "plexus"
	}
	if o.SnapshotPath == "" {
		o.SnapshotPath = "plexus.svg"
	}
	return o
}

// host is the part of a window that does not depend on the graphics
// library: size tracking, pointer routing, frame scheduling and the HUD.
type host struct {
	sim     *field.Simulator
	opts    Options
	metrics *metrics.Set

	width, height int
	density       float64
	ticket        field.Ticket

	paused  bool
	showHUD bool
}

func newHost(sim *field.Simulator, opts Options) *host {
	set := metrics.Standard()
	sim.AddObserver(set)
	return &host{sim: sim, opts: opts, metrics: set, showHUD: true}
}

// observeSize rebuilds the field when the window's displayed size or
// density differs from the last one seen. It reports whether it rebuilt.
func (h *host) observeSize(width, height int, density float64) bool {
	if width == h.width && height == h.height && density == h.density && h.sim.State() != field.Uninitialized {
		return false
	}
	h.width, h.height, h.density = width, height, density
	h.rebuild()
	return true
}

func (h *host) rebuild() {
	h.sim.Resize(float64(h.width), float64(h.height), h.density)
	h.metrics.Reset()
	h.ticket = h.sim.Schedule()
	log.Printf("plexus: field %dx%d at %.2gx, %d particles", h.width, h.height, h.sim.Viewport().Scale, len(h.sim.Particles()))
}

// observePointer routes a cursor position in logical coordinates.
func (h *host) observePointer(x, y float64, inside bool) {
	if !inside {
		h.sim.ClearPointer()
		return
	}
	h.sim.SetPointer(x, y)
}

// frame advances and paints one frame, or only repaints while paused.
func (h *host) frame(now time.Time, s field.Surface) {
	if h.paused {
		h.sim.Render(s)
		return
	}
	if h.sim.Fire(h.ticket, now, s) {
		h.ticket = h.sim.Schedule()
		return
	}
	// a frame the window dropped still needs a painted surface
	h.sim.Render(s)
}

func (h *host) togglePause() { h.paused = !h.paused }

func (h *host) toggleHUD() { h.showHUD = !h.showHUD }

func (h *host) snapshot() {
	vp := h.sim.Viewport()
	svg := export.NewSVG(vp.Width, vp.Height)
	h.sim.Render(svg)
	if err := svg.Save(h.opts.SnapshotPath); err != nil {
		log.Printf("plexus: snapshot: %v", err)
		return
	}
	log.Printf("plexus: saved %s (%d links, %d particles)", h.opts.SnapshotPath, svg.Lines(), svg.Circles())
}

func (h *host) hud() string {
	v := h.metrics.Values()
	status := "RUNNING"
	if h.paused {
		status = "PAUSED"
	}
	return fmt.Sprintf("plexus :: %s\n%.0f fps  %.0f links  repel %.0f%%\n[SPACE] PAUSE  [R] REBUILD  [S] SVG  [H] HUD  [Q] QUIT",
		status, v["fps"], v["links_mean"], v["repel_rate"]*100)
}
