package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia/buffer"
)

// ActionForKey translates a key press into a buffer action. handled reports
// whether the key belongs to the editor at all; a handled key may still have
// no action (copy only touches the clipboard).
//
// The buffer is not changed. Clipboard reads and writes happen here.
func (m Model) ActionForKey(msg tea.KeyMsg) (a buffer.Action, handled bool) {
	if !m.focused || m.buf == nil {
		return nil, false
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		return buffer.Paste{Text: normalizeNewlines(string(msg.Runes))}, true
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) (buffer.Action, bool) {
		return buffer.MoveCursor{Move: buffer.Move{Unit: unit, Dir: dir, Extend: extend}}, true
	}

	switch {
	case key.Matches(msg, km.Left):
		return move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		return move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		return move(buffer.MoveGrapheme, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		return move(buffer.MoveGrapheme, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		return move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		return move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		return move(buffer.MoveGrapheme, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		return move(buffer.MoveGrapheme, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		return move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		return move(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.ShiftWordLeft):
		return move(buffer.MoveWord, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftWordRight):
		return move(buffer.MoveWord, buffer.DirRight, true)

	case key.Matches(msg, km.Home):
		return move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		return move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.ShiftHome):
		return move(buffer.MoveLine, buffer.DirHome, true)
	case key.Matches(msg, km.ShiftEnd):
		return move(buffer.MoveLine, buffer.DirEnd, true)
	case key.Matches(msg, km.DocStart):
		return move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		return move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.PageUp):
		return m.pageMove(-1), true
	case key.Matches(msg, km.PageDown):
		return m.pageMove(1), true
	case key.Matches(msg, km.SelectAll):
		return buffer.SelectAll{}, true

	case key.Matches(msg, km.Backspace):
		return buffer.Backspace{}, true
	case key.Matches(msg, km.Delete):
		return buffer.Delete{}, true
	case key.Matches(msg, km.Enter):
		return buffer.Newline{}, true
	case key.Matches(msg, km.Tab):
		return buffer.Insert{Text: "\t"}, true

	case key.Matches(msg, km.Undo):
		return buffer.Undo{}, true
	case key.Matches(msg, km.Redo):
		return buffer.Redo{}, true

	case key.Matches(msg, km.Copy):
		m.copySelection()
		return nil, true
	case key.Matches(msg, km.Cut):
		if !m.copySelection() {
			return nil, true
		}
		return buffer.Cut{}, true
	case key.Matches(msg, km.Paste):
		s, ok := m.readClipboard()
		if !ok {
			return nil, true
		}
		return buffer.Paste{Text: s}, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return buffer.Insert{Text: " "}, true
	case tea.KeyRunes:
		if len(msg.Runes) > 0 && !msg.Alt {
			return buffer.Insert{Text: string(msg.Runes)}, true
		}
	}
	return nil, false
}

func (m Model) pageMove(dir int) buffer.Action {
	step := maxInt(m.visibleRowCount()-1, 1)
	cur := m.buf.Cursor()
	return buffer.MoveTo{Pos: buffer.Pos{Row: cur.Row + dir*step, GraphemeCol: cur.GraphemeCol}}
}

// copySelection writes the selection to the clipboard and reports whether
// there was one.
func (m Model) copySelection() bool {
	s := m.buf.SelectedText()
	if s == "" {
		return false
	}
	if m.cfg.Clipboard != nil {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	return true
}

func (m Model) readClipboard() (string, bool) {
	if m.cfg.Clipboard == nil {
		return "", false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return "", false
	}
	return normalizeNewlines(s), true
}

// normalizeNewlines converts CRLF and CR line endings from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
