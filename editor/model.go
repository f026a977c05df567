package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer
// owned by the host.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64
	lastCursor     buffer.Pos

	mouseDragging bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.Left.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{
		cfg:      cfg,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// SetBuffer points the editor at b. Switching to a different buffer resets
// scrolling.
func (m Model) SetBuffer(b *buffer.Buffer) Model {
	if b == m.buf {
		return m
	}
	m.buf = b
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.mouseDragging = false
	m.markSynced()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) SetHighlighter(h Highlighter) Model {
	m.cfg.Highlighter = h
	m.rebuildContent()
	return m
}

func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Update handles sizing and wheel scrolling. Anything else only resyncs the
// view with the buffer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		if !isWheel(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Newly exposed rows need highlighting.
		m.rebuildContent()
		return m, cmd
	default:
		return m.Sync(), nil
	}
}

// Sync re-renders after the host changed the buffer and scrolls the cursor
// into view when it moved.
func (m Model) Sync() Model {
	if m.buf == nil {
		return m
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return m
	}
	m.markSynced()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Refresh re-renders unconditionally, e.g. after the highlighter's output
// changed.
func (m Model) Refresh() Model {
	m.rebuildContent()
	return m
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) markSynced() {
	if m.buf == nil {
		return
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
