package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/highlight"
)

// chrome styles everything around the editing surface.
type chrome struct {
	bar            lipgloss.Style
	button         lipgloss.Style
	buttonDisabled lipgloss.Style
	chip           lipgloss.Style

	status lipgloss.Style
	err    lipgloss.Style
	stale  lipgloss.Style
	dirty  lipgloss.Style

	overlay lipgloss.Style
	title   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newChrome(theme highlight.Theme, r *lipgloss.Renderer) chrome {
	p := theme.Palette()
	bar := r.NewStyle().Foreground(p.Foreground).Background(p.Selection)
	return chrome{
		bar:            bar,
		button:         bar.Bold(true).Padding(0, 1),
		buttonDisabled: bar.Foreground(p.Dim).Padding(0, 1),
		chip:           bar.Foreground(p.Accent).Padding(0, 1),

		status: bar,
		err:    bar.Foreground(lipgloss.Color("#dc322f")).Bold(true),
		stale:  bar.Foreground(lipgloss.Color("#b58900")),
		dirty:  bar.Foreground(p.Accent).Bold(true),

		overlay: r.NewStyle().Foreground(p.Foreground).Background(p.Background),
		title:   r.NewStyle().Foreground(p.Accent).Background(p.Background).Bold(true),
		added:   r.NewStyle().Foreground(lipgloss.Color("#859900")).Background(p.Background),
		removed: r.NewStyle().Foreground(lipgloss.Color("#dc322f")).Background(p.Background),
	}
}
