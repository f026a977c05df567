package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/session"
)

type toolID int

const (
	toolNone toolID = iota
	toolNew
	toolOpen
	toolSave
	toolTheme
)

type toolItem struct {
	id      toolID
	label   string
	enabled bool

	// x0, x1 are the half-open screen columns the item occupies.
	x0, x1 int
}

// toolbarItems lays out the toolbar for v. Open waits for a load or save;
// Save also needs unsaved changes.
func toolbarItems(v session.View, st chrome) []toolItem {
	// A disk check gives way to file operations.
	free := !v.Busy || v.Pending == session.OpChecking
	items := []toolItem{
		{id: toolNew, label: "New", enabled: true},
		{id: toolOpen, label: "Open", enabled: free},
		{id: toolSave, label: "Save", enabled: v.Dirty && free},
		{id: toolTheme, label: "Theme: " + v.Theme.String(), enabled: true},
	}
	x := 0
	for i := range items {
		w := lipgloss.Width(items[i].render(st))
		items[i].x0, items[i].x1 = x, x+w
		x += w
	}
	return items
}

func (it toolItem) render(st chrome) string {
	switch {
	case it.id == toolTheme:
		return st.chip.Render(it.label)
	case it.enabled:
		return st.button.Render(it.label)
	default:
		return st.buttonDisabled.Render(it.label)
	}
}

func renderToolbar(items []toolItem, st chrome, width int) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(it.render(st))
	}
	line := sb.String()
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += st.bar.Render(strings.Repeat(" ", pad))
	}
	return line
}

// toolAt returns the enabled item under column x.
func toolAt(items []toolItem, x int) toolID {
	for _, it := range items {
		if x >= it.x0 && x < it.x1 {
			if !it.enabled {
				return toolNone
			}
			return it.id
		}
	}
	return toolNone
}
