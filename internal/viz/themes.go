package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the live view.
type Theme struct {
	Name   string
	Field  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

var Themes = []Theme{
	{Name: "neural", Field: "#00d4ff", Accent: "#7cf7ff", Text: "#e6f6ff", Muted: "#4b6478", Border: "#1c2a44"},
	{Name: "retro", Field: "#00ff00", Accent: "#88ff88", Text: "#00ff00", Muted: "#005500", Border: "#003300"},
	{Name: "minimal", Field: "#ffffff", Accent: "#0088ff", Text: "#ffffff", Muted: "#888888", Border: "#444444"},
	{Name: "ember", Field: "#ff7a3d", Accent: "#ffc048", Text: "#fff5f0", Muted: "#8b5a4c", Border: "#3a1d14"},
	{Name: "ocean", Field: "#00a8cc", Accent: "#ffd700", Text: "#e0f0ff", Muted: "#4488aa", Border: "#0a2a44"},
}

// ThemeIndex returns the position of the named theme, or 0.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	status lipgloss.Style
}

func stylesFor(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2).Foreground(t.Field),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(statsWidth),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Field).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		status: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}
