package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/session"
)

const staleMarker = "[changed on disk]"

// renderStatus lays out the status bar: file and state on the left, the
// cursor position on the right.
func renderStatus(v session.View, spin string, st chrome, width int) string {
	left := []string{st.status.Render(" " + v.FileLabel())}
	if v.Dirty {
		left = append(left, st.dirty.Render("*"))
	}
	if v.Busy && v.Pending != session.OpChecking {
		left = append(left, st.status.Render(" "+spin+" "+v.Pending.String()+"..."))
	}
	if v.Stale {
		left = append(left, st.stale.Render(" "+staleMarker))
	}
	if v.Err != nil {
		left = append(left, st.err.Render(" "+v.Err.Error()))
	}
	l := strings.Join(left, "")
	r := st.status.Render(v.Status.String() + " ")

	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		// The position goes first when space runs out.
		return truncate(l, width, st)
	}
	return l + st.status.Render(strings.Repeat(" ", gap)) + r
}

func truncate(s string, width int, st chrome) string {
	w := lipgloss.Width(s)
	if w == width {
		return s
	}
	if w < width {
		return s + st.status.Render(strings.Repeat(" ", width-w))
	}
	return st.status.MaxWidth(width).Render(s)
}

func windowTitle(v session.View) string {
	t := "Rheia - " + v.FileLabel()
	if v.Dirty {
		t += "*"
	}
	return t
}
