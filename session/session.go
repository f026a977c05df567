// Package session holds the state of the one open document and decides which
// file operations may run.
//
// A Session is not safe for concurrent use. The host calls Dispatch and
// Complete from a single goroutine; the Tasks that Dispatch returns run
// elsewhere and only ever produce a Completion.
package session

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/iw2rmb/rheia/buffer"
	"github.com/iw2rmb/rheia/fileservice"
	"github.com/iw2rmb/rheia/highlight"
)

// Op is the file operation a busy session waits for.
type Op uint8

const (
	OpNone Op = iota
	OpLoading
	OpSaving
	OpChecking
)

func (o Op) String() string {
	switch o {
	case OpLoading:
		return "Loading"
	case OpSaving:
		return "Saving"
	case OpChecking:
		return "Checking"
	default:
		return ""
	}
}

type Options struct {
	// DefaultPath is loaded at startup. Empty starts with an untitled
	// document.
	DefaultPath string

	Theme        highlight.Theme
	HistoryLimit int

	// Logger receives rejected intents and discarded completions. Nil
	// discards.
	Logger *slog.Logger
}

type Session struct {
	files     fileservice.Service
	log       *slog.Logger
	histLimit int

	buf      *buffer.Buffer
	path     string
	dirty    bool
	pending  Op
	lastErr  error
	theme    highlight.Theme
	baseline string
	stale    bool
}

// New creates a session with an empty untitled document. When
// opt.DefaultPath is set the session starts busy loading it and the returned
// Task must be run; otherwise the Task is nil.
func New(files fileservice.Service, opt Options) (*Session, Task) {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	theme := opt.Theme
	if theme == "" {
		theme = highlight.DefaultTheme
	}

	s := &Session{
		files:     files,
		log:       log,
		histLimit: opt.HistoryLimit,
		theme:     theme,
	}
	s.buf = s.newBuffer("")

	if opt.DefaultPath == "" {
		return s, nil
	}
	s.pending = OpLoading
	return s, s.loadTask(opt.DefaultPath)
}

func (s *Session) newBuffer(text string) *buffer.Buffer {
	return buffer.New(text, buffer.Options{HistoryLimit: s.histLimit})
}

// Buffer returns the current document. It is replaced on every successful
// load and on NewFile, so callers must not hold on to it across Complete.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Path() string           { return s.path }
func (s *Session) Dirty() bool            { return s.dirty }
func (s *Session) Busy() bool             { return s.pending != OpNone }
func (s *Session) Pending() Op            { return s.pending }
func (s *Session) Err() error             { return s.lastErr }
func (s *Session) Theme() highlight.Theme { return s.theme }
func (s *Session) Stale() bool            { return s.stale }

// CanEdit reports whether Edit intents are applied now. A check never
// replaces the buffer, so typing continues during it.
func (s *Session) CanEdit() bool { return s.pending == OpNone || s.pending == OpChecking }

// Baseline returns the text as last loaded or saved.
func (s *Session) Baseline() string { return s.baseline }

// Dispatch applies in. Local intents are handled immediately and return nil.
// File intents return the Task to run and leave the session busy until its
// Completion is passed to Complete. Intents that are not allowed in the
// current state are dropped and return nil.
func (s *Session) Dispatch(in Intent) Task {
	switch in := in.(type) {
	case ChangeTheme:
		if in.Theme != "" {
			s.theme = in.Theme
		}
		return nil

	case Edit:
		if in.Action == nil || !s.CanEdit() {
			s.reject(in)
			return nil
		}
		s.buf.Perform(in.Action)
		s.dirty = s.dirty || buffer.IsEdit(in.Action)
		s.lastErr = nil
		return nil
	}

	// A check only reads the file, so the user's file operations overtake it.
	// Its completion is then discarded as stale.
	if s.pending == OpChecking && overtakesCheck(in) {
		s.log.Debug("disk check abandoned", "intent", intentName(in))
		s.pending = OpNone
	}
	if s.Busy() {
		s.reject(in)
		return nil
	}

	switch in := in.(type) {
	case NewFile:
		s.buf = s.newBuffer("")
		s.path = ""
		s.dirty = false
		s.lastErr = nil
		s.stale = false
		s.baseline = ""
		return nil

	case OpenFile:
		s.pending = OpLoading
		return s.openTask()

	case SaveFile:
		s.pending = OpSaving
		return s.saveTask(s.path, s.buf.Text())

	case DropFile:
		if in.Path == "" {
			s.reject(in)
			return nil
		}
		s.pending = OpLoading
		return s.loadTask(in.Path)

	case DiskChanged:
		if s.path == "" || !samePath(in.Path, s.path) {
			s.reject(in)
			return nil
		}
		s.pending = OpChecking
		return s.checkTask(s.path)
	}

	s.reject(in)
	return nil
}

func (s *Session) reject(in Intent) {
	s.log.Debug("intent dropped", "intent", intentName(in), "pending", s.pending.String())
}

// Complete folds the result of a Task into the session. It reports false
// when c does not match the pending operation and was discarded.
func (s *Session) Complete(c Completion) bool {
	if c == nil || s.pending == OpNone || c.Op() != s.pending {
		op := "none"
		if c != nil {
			op = c.Op().String()
		}
		s.log.Warn("completion discarded", "op", op, "pending", s.pending.String())
		return false
	}
	s.pending = OpNone

	switch c := c.(type) {
	case Opened:
		switch {
		case c.Err == nil:
			s.buf = s.newBuffer(c.Text)
			s.path = absPath(c.Path)
			s.dirty = false
			s.lastErr = nil
			s.baseline = c.Text
			s.stale = false
		case errors.Is(c.Err, fileservice.ErrCancelled):
			s.lastErr = nil
		default:
			s.lastErr = c.Err
			s.log.Warn("open failed", "path", c.Path, "err", c.Err)
		}

	case Saved:
		switch {
		case c.Err == nil:
			s.path = absPath(c.Path)
			s.dirty = false
			s.lastErr = nil
			s.baseline = c.Text
			s.stale = false
		case errors.Is(c.Err, fileservice.ErrCancelled):
			s.lastErr = nil
		default:
			s.lastErr = c.Err
			s.log.Warn("save failed", "path", c.Path, "err", c.Err)
		}

	case Checked:
		switch {
		case c.Err == nil:
			s.stale = c.Text != s.baseline
		case fileservice.KindOf(c.Err) == fileservice.KindNotFound:
			s.stale = true
		default:
			s.log.Debug("disk check failed", "path", c.Path, "err", c.Err)
		}
	}
	return true
}

func overtakesCheck(in Intent) bool {
	switch in.(type) {
	case NewFile, OpenFile, SaveFile, DropFile:
		return true
	}
	return false
}

// absPath anchors p to the working directory, matching the paths the file
// watcher reports.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func samePath(a, b string) bool {
	return absPath(a) == absPath(b)
}
