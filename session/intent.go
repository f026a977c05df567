package session

import (
	"context"

	"github.com/iw2rmb/rheia/buffer"
	"github.com/iw2rmb/rheia/highlight"
)

// Intent is a user or environment request handed to Session.Dispatch.
type Intent interface {
	isIntent()
}

type (
	// NewFile replaces the document with an empty untitled one.
	NewFile struct{}

	// OpenFile asks for a path with the open dialog and loads it.
	OpenFile struct{}

	// SaveFile writes the document to its path, asking for one first when
	// the document is untitled.
	SaveFile struct{}

	// Edit applies a buffer action.
	Edit struct{ Action buffer.Action }

	// DropFile loads Path without a dialog.
	DropFile struct{ Path string }

	// ChangeTheme switches the highlighting theme.
	ChangeTheme struct{ Theme highlight.Theme }

	// DiskChanged reports that the file at Path changed outside the editor.
	DiskChanged struct{ Path string }
)

func (NewFile) isIntent()     {}
func (OpenFile) isIntent()    {}
func (SaveFile) isIntent()    {}
func (Edit) isIntent()        {}
func (DropFile) isIntent()    {}
func (ChangeTheme) isIntent() {}
func (DiskChanged) isIntent() {}

func intentName(in Intent) string {
	switch in.(type) {
	case NewFile:
		return "new"
	case OpenFile:
		return "open"
	case SaveFile:
		return "save"
	case Edit:
		return "edit"
	case DropFile:
		return "drop"
	case ChangeTheme:
		return "theme"
	case DiskChanged:
		return "disk-changed"
	default:
		return "unknown"
	}
}

// Completion is the result of a Task. Each completion resolves exactly one
// pending Op.
type Completion interface {
	Op() Op
	isCompletion()
}

type (
	// Opened resolves OpLoading. Err is fileservice.ErrCancelled when the
	// open dialog was dismissed.
	Opened struct {
		Path string
		Text string
		Err  error
	}

	// Saved resolves OpSaving. Text is the content that was written.
	Saved struct {
		Path string
		Text string
		Err  error
	}

	// Checked resolves OpChecking with the file's current content.
	Checked struct {
		Path string
		Text string
		Err  error
	}
)

func (Opened) Op() Op  { return OpLoading }
func (Saved) Op() Op   { return OpSaving }
func (Checked) Op() Op { return OpChecking }

func (Opened) isCompletion()  {}
func (Saved) isCompletion()   {}
func (Checked) isCompletion() {}

// Task is asynchronous file work. It must not touch the Session; its
// Completion is folded back with Session.Complete.
type Task func(ctx context.Context) Completion
