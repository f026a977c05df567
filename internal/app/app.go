// Package app is the Bubble Tea program around a session: toolbar, editing
// surface, status bar, file dialogs and the unsaved-changes view.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/buffer"
	"github.com/iw2rmb/rheia/editor"
	"github.com/iw2rmb/rheia/fileservice"
	"github.com/iw2rmb/rheia/highlight"
	"github.com/iw2rmb/rheia/internal/watch"
	"github.com/iw2rmb/rheia/session"
)

const (
	toolbarHeight = 1
	statusHeight  = 1
	helpHeight    = 1
)

type Options struct {
	Session     *session.Session
	StartupTask session.Task

	// Prompt is the in-terminal dialog broker. Nil when the session uses
	// native dialogs.
	Prompt *fileservice.Prompt

	// Watcher reports external changes to the open file. Nil disables.
	Watcher *watch.Watcher

	// Clipboard defaults to the system clipboard.
	Clipboard editor.Clipboard

	LineNumbers bool
	TabWidth    int
	DropOnPaste bool

	// Context bounds every file task. Defaults to context.Background.
	Context  context.Context
	Logger   *slog.Logger
	Renderer *lipgloss.Renderer
}

type Model struct {
	sess *session.Session
	ctx  context.Context
	log  *slog.Logger
	r    *lipgloss.Renderer
	keys KeyMap

	broker      *fileservice.Prompt
	watcher     *watch.Watcher
	dropOnPaste bool
	startup     session.Task

	editor  editor.Model
	spinner spinner.Model
	help    help.Model
	prompt  *prompt
	diff    *diffView

	st            chrome
	width, height int

	// Session state last pushed into the widgets.
	buf   *buffer.Buffer
	theme highlight.Theme
	path  string
	title string
}

func New(opt Options) Model {
	ctx := opt.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := opt.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	clip := opt.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}
	clip = loggedClipboard{Clipboard: clip, log: log}
	keys := DefaultKeyMap()

	m := Model{
		sess:        opt.Session,
		ctx:         ctx,
		log:         log,
		r:           r,
		keys:        keys,
		broker:      opt.Prompt,
		watcher:     opt.Watcher,
		dropOnPaste: opt.DropOnPaste,
		startup:     opt.StartupTask,
		editor: editor.New(editor.Config{
			ShowLineNums: opt.LineNumbers,
			TabWidth:     opt.TabWidth,
			KeyMap:       keys.Editor,
			Clipboard:    clip,
		}),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
	}
	m.syncSession()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle(m.title),
		runTask(m.ctx, m.startup),
		waitForRequest(m.ctx, m.broker),
		waitForWatch(m.watcher),
	}
	if m.sess.Busy() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case completionMsg:
		m.sess.Complete(msg.c)
		cmd := m.syncSession()
		return m, cmd

	case requestMsg:
		if m.prompt != nil {
			m.prompt.cancel()
		}
		m.closeDiff()
		p, cmd := newPrompt(msg.req, m.width, m.bodyHeight())
		m.prompt = p
		m.editor = m.editor.Blur()
		return m, tea.Batch(cmd, waitForRequest(m.ctx, m.broker))

	case diskChangedMsg:
		cmd := tea.Batch(m.dispatch(session.DiskChanged{Path: msg.path}), waitForWatch(m.watcher))
		return m, cmd

	case watchErrMsg:
		m.log.Warn("file watcher error", "err", msg.err)
		return m, waitForWatch(m.watcher)

	case spinner.TickMsg:
		if !m.sess.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// The file picker reads directories through its own messages.
	if m.prompt != nil {
		return m.updatePrompt(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.prompt != nil {
			m.prompt.cancel()
			m.prompt = nil
		}
		return m, tea.Quit
	}
	if m.prompt != nil {
		return m.updatePrompt(msg)
	}
	if m.diff != nil {
		if key.Matches(msg, m.keys.Diff, m.keys.Cancel) {
			m.closeDiff()
			return m, nil
		}
		var cmd tea.Cmd
		m.diff.vp, cmd = m.diff.vp.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		cmd := m.dispatch(session.SaveFile{})
		return m, cmd
	case key.Matches(msg, m.keys.Open):
		cmd := m.dispatch(session.OpenFile{})
		return m, cmd
	case key.Matches(msg, m.keys.New):
		cmd := m.dispatch(session.NewFile{})
		return m, cmd
	case key.Matches(msg, m.keys.Theme):
		cmd := m.dispatch(session.ChangeTheme{Theme: m.sess.Theme().Next()})
		return m, cmd
	case key.Matches(msg, m.keys.Diff):
		m.openDiff()
		return m, nil
	}

	if msg.Paste && m.dropOnPaste {
		if p, ok := droppedPath(string(msg.Runes), nil); ok {
			cmd := m.dispatch(session.DropFile{Path: p})
			return m, cmd
		}
	}

	// Copy and cut touch the clipboard before the session sees the edit.
	if !m.sess.CanEdit() {
		return m, nil
	}
	a, handled := m.editor.ActionForKey(msg)
	if !handled || a == nil {
		return m, nil
	}
	cmd := m.dispatch(session.Edit{Action: a})
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m, nil
	}
	if m.diff != nil {
		var cmd tea.Cmd
		m.diff.vp, cmd = m.diff.vp.Update(msg)
		return m, cmd
	}

	if msg.Y < toolbarHeight {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cmd := m.clickTool(toolAt(toolbarItems(m.toolbarView(), m.st), msg.X))
		return m, cmd
	}

	local := msg
	local.Y -= toolbarHeight
	var (
		a   buffer.Action
		cmd tea.Cmd
	)
	m.editor, a, cmd = m.editor.ActionForMouse(local)
	if a == nil {
		return m, cmd
	}
	cmd = tea.Batch(cmd, m.dispatch(session.Edit{Action: a}))
	return m, cmd
}

func (m *Model) clickTool(id toolID) tea.Cmd {
	switch id {
	case toolNew:
		return m.dispatch(session.NewFile{})
	case toolOpen:
		return m.dispatch(session.OpenFile{})
	case toolSave:
		return m.dispatch(session.SaveFile{})
	case toolTheme:
		return m.dispatch(session.ChangeTheme{Theme: m.sess.Theme().Next()})
	}
	return nil
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := m.prompt.update(msg, m.keys)
	if done {
		m.prompt = nil
		m.editor = m.editor.Focus()
	}
	return m, cmd
}

// dispatch hands in to the session and starts the task it returns.
func (m *Model) dispatch(in session.Intent) tea.Cmd {
	task := m.sess.Dispatch(in)
	cmds := []tea.Cmd{m.syncSession()}
	if task != nil {
		cmds = append(cmds, runTask(m.ctx, task), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// syncSession pushes session changes into the editor, highlighter, watcher
// and window title.
func (m *Model) syncSession() tea.Cmd {
	if b := m.sess.Buffer(); b != m.buf {
		m.buf = b
		m.editor = m.editor.SetBuffer(b)
	}

	path, theme := m.sess.Path(), m.sess.Theme()
	if theme != m.theme || path != m.path {
		if theme != m.theme {
			m.st = newChrome(theme, m.r)
			m.editor = m.editor.SetStyle(highlight.EditorStyle(theme, m.r))
		}
		m.editor = m.editor.SetHighlighter(highlight.New(path, theme, m.r))
		if path != m.path && m.watcher != nil {
			if err := m.watcher.Follow(path); err != nil {
				m.log.Warn("cannot watch file", "path", path, "err", err)
			}
		}
		m.theme, m.path = theme, path
	}
	m.editor = m.editor.Sync()

	var cmd tea.Cmd
	if t := windowTitle(session.View{Path: path, Dirty: m.sess.Dirty()}); t != m.title {
		m.title = t
		cmd = tea.SetWindowTitle(t)
	}
	return cmd
}

func (m Model) toolbarView() session.View {
	return session.View{Busy: m.sess.Busy(), Pending: m.sess.Pending(), Dirty: m.sess.Dirty(), Theme: m.sess.Theme()}
}

func (m *Model) openDiff() {
	m.diff = newDiffView(m.sess.Baseline(), m.sess.Buffer().Text(), m.width, m.bodyHeight(), m.st)
	m.editor = m.editor.Blur()
}

func (m *Model) closeDiff() {
	if m.diff == nil {
		return
	}
	m.diff = nil
	m.editor = m.editor.Focus()
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-toolbarHeight-statusHeight-helpHeight, 0)
}

func (m *Model) layout() {
	m.editor = m.editor.SetSize(m.width, m.bodyHeight())
	m.help.Width = m.width
	if m.diff != nil {
		m.diff.vp.Width = m.width
		m.diff.vp.Height = maxInt(m.bodyHeight()-1, 0)
	}
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	v := m.sess.View()

	var body, helpLine string
	switch {
	case m.prompt != nil:
		body = m.overlay(m.prompt.title(), m.prompt.view())
		helpLine = m.help.View(promptKeys{m.keys})
	case m.diff != nil:
		title := fmt.Sprintf("Unsaved changes (+%d -%d)", m.diff.added, m.diff.removed)
		body = m.overlay(title, m.diff.vp.View())
		helpLine = m.help.View(diffKeys{m.keys})
	default:
		body = m.editor.View()
		helpLine = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderToolbar(toolbarItems(v, m.st), m.st, m.width),
		body,
		renderStatus(v, m.spinner.View(), m.st, m.width),
		helpLine,
	)
}

func (m Model) overlay(title, content string) string {
	h := m.bodyHeight()
	return m.st.overlay.
		Width(m.width).
		Height(h).
		MaxHeight(h).
		Render(m.st.title.Render(title) + "\n" + content)
}
