package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/plexus/internal/export"
	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/metrics"
)

const (
	statsWidth      = 44
	historyCapacity = 240
	// canvas padding from canvasStyle: one row, two columns
	canvasPadX = 2
	canvasPadY = 1
)

type TickMsg time.Time

type Options struct {
	FPS          int
	Theme        string
	SnapshotPath string
	GIFPath      string
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.SnapshotPath == "" {
		o.SnapshotPath = "plexus.svg"
	}
	if o.GIFPath == "" {
		o.GIFPath = "plexus.gif"
	}
	return o
}

// Model is the bubbletea model of the live view. The terminal window is
// the drawable surface: a resize rebuilds the field at the new canvas size
// and mouse motion moves the pointer.
type Model struct {
	sim      *field.Simulator
	cfg      field.Config
	opts     Options
	canvas   *Canvas
	history  *metrics.History
	metrics  *metrics.Set
	theme    int
	running  bool
	ready    bool
	showHelp bool
	recorder *GIFRecorder
	notice   string
}

func NewModel(sim *field.Simulator, opts Options) Model {
	opts = opts.withDefaults()
	history := metrics.NewHistory(historyCapacity)
	set := metrics.Standard()
	sim.AddObserver(history)
	sim.AddObserver(set)

	return Model{
		sim:     sim,
		cfg:     sim.Config(),
		opts:    opts,
		history: history,
		metrics: set,
		theme:   ThemeIndex(opts.Theme),
		running: true,
	}
}

// Run blocks until the user quits the live view.
func Run(sim *field.Simulator, opts Options) error {
	p := tea.NewProgram(NewModel(sim, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.movePointer(msg.X, msg.Y)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.rebuild()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "g":
			m.toggleRecording()
		case "s":
			m.snapshot()
		case "?":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.sim.ClearPointer()
			}
		}
	case TickMsg:
		if m.ready && m.running {
			m.sim.Tick(time.Time(msg), m.canvas)
			if m.recorder != nil {
				m.recorder.Capture(m.canvas)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(termW, termH int) {
	cw := termW - statsWidth - 2*canvasPadX - 1
	ch := termH - 2*canvasPadY
	if cw < 1 || ch < 1 {
		// no drawable area yet
		m.ready = false
		return
	}
	if m.recorder != nil {
		// a GIF holds one frame size
		m.toggleRecording()
	}
	m.canvas = NewCanvas(cw, ch)
	m.canvas.PeakAlpha = field.WithAlpha(m.cfg.Color, m.cfg.LineOpacity).A
	m.rebuild()
	m.ready = true
}

func (m *Model) rebuild() {
	if m.canvas == nil {
		return
	}
	dw, dh := m.canvas.Dots()
	m.sim.Resize(float64(dw), float64(dh), 1)
	m.history.Reset()
	m.sim.Render(m.canvas)
}

func (m *Model) movePointer(x, y int) {
	if m.canvas == nil {
		return
	}
	if m.showHelp {
		// the help box pushes the canvas down
		m.sim.ClearPointer()
		return
	}
	cx, cy := x-canvasPadX, y-canvasPadY
	if cx < 0 || cy < 0 || cx >= m.canvas.Width || cy >= m.canvas.Height {
		m.sim.ClearPointer()
		return
	}
	// centre of the character cell in dots
	m.sim.SetPointer(float64(cx*2)+1, float64(cy*4)+2)
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewGIFRecorder(m.cfg.BgColor, m.cfg.Color)
		m.notice = "recording"
		return
	}
	if err := m.recorder.Save(m.opts.GIFPath); err != nil {
		m.notice = "gif: " + err.Error()
	} else {
		m.notice = fmt.Sprintf("saved %d frames to %s", m.recorder.Len(), m.opts.GIFPath)
	}
	m.recorder = nil
}

func (m *Model) snapshot() {
	if !m.ready {
		return
	}
	vp := m.sim.Viewport()
	svg := export.NewSVG(vp.Width, vp.Height)
	m.sim.Render(svg)
	if err := svg.Save(m.opts.SnapshotPath); err != nil {
		m.notice = "svg: " + err.Error()
		return
	}
	m.notice = "saved " + m.opts.SnapshotPath
}

func (m Model) status() string {
	switch {
	case m.recorder != nil:
		return "● REC"
	case !m.running:
		return "PAUSED"
	}
	return "RUNNING"
}

func (m Model) View() string {
	if !m.ready {
		return "waiting for terminal size..."
	}
	theme := Themes[m.theme]
	st := stylesFor(theme)

	var last field.FrameStats
	if frames := m.history.Frames(); len(frames) > 0 {
		last = frames[len(frames)-1]
	}

	var s strings.Builder
	s.WriteString(st.header.Render("PLEXUS") + "\n")
	s.WriteString(st.status.Render(m.status()) + "\n\n")

	if links := m.history.Links(); len(links) > 1 {
		chart := asciigraph.Plot(links, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("links"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	vp := m.sim.Viewport()
	row("Field", fmt.Sprintf("%.0fx%.0f", vp.Width, vp.Height))
	row("Ticks", fmt.Sprintf("%d", m.sim.Ticks()))
	row("Particles", fmt.Sprintf("%d", last.Particles))
	row("Links", fmt.Sprintf("%d", last.Links))
	row("Repelled", fmt.Sprintf("%d", last.Repelled))
	row("FPS", fmt.Sprintf("%.1f", m.metrics.Values()["fps"]))
	if p := m.sim.Pointer(); p != field.IdlePointer {
		row("Pointer", p.String())
	} else {
		row("Pointer", "-")
	}
	row("Theme", theme.Name)
	if m.notice != "" {
		s.WriteString("\n" + st.value.Render(m.notice) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Rebuild Q:Quit\nT:Theme G:Record S:SVG ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Rebuild the field        ║
║  Q        - Quit                     ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  S        - Save SVG snapshot        ║
║  Mouse    - Repel particles          ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
