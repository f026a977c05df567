package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia/buffer"
)

// ActionForMouse translates a left-button press or drag into a cursor or
// selection action. Coordinates are relative to the editor's top-left cell.
// Wheel events scroll the view and produce no action.
func (m Model) ActionForMouse(msg tea.MouseMsg) (Model, buffer.Action, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return m, nil, cmd
	}
	if !m.focused || m.buf == nil {
		return m, nil, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil, nil
		}
		m.mouseDragging = true
		return m, buffer.MoveTo{Pos: m.screenToDocPos(msg.X, msg.Y), Extend: msg.Shift}, nil

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		return m, buffer.MoveTo{Pos: m.screenToDocPos(x, y), Extend: true}, nil

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
