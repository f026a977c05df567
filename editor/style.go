package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// StyleForBackground derives an editor style that sits on bg with text in
// fg. Line numbers are dimmed toward bg.
func StyleForBackground(fg, bg, selection, dim lipgloss.TerminalColor) Style {
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Style{
		Gutter:        lipgloss.NewStyle().Foreground(dim).Background(bg),
		LineNum:       lipgloss.NewStyle().Foreground(dim).Background(bg),
		LineNumActive: lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(true),
		Text:          base,
		Selection:     lipgloss.NewStyle().Foreground(fg).Background(selection),
		Cursor:        base.Reverse(true),
	}
}
