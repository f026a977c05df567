package fileservice

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrCancelled reports that the user closed a dialog without picking a
	// file. It is not a failure.
	ErrCancelled = errors.New("dialog cancelled")

	// ErrInvalidUTF8 reports a file whose contents are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Kind is the platform classification of a file operation failure.
type Kind uint8

const (
	KindOther Kind = iota
	KindNotFound
	KindPermissionDenied
	KindAlreadyExists
	KindIsDirectory
	KindInvalidData
	KindInterrupted
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "already exists"
	case KindIsDirectory:
		return "is a directory"
	case KindInvalidData:
		return "invalid data"
	case KindInterrupted:
		return "interrupted"
	default:
		return "other error"
	}
}

// Operation names used in Error.Op.
const (
	OpRead   = "read"
	OpWrite  = "write"
	OpDialog = "dialog"
)

// Error is a failed file operation.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, cause(e.Err))
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// cause strips the *fs.PathError layer, whose op and path Error already
// carries.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Classify wraps err into an *Error with its Kind. Nil, ErrCancelled and
// errors that are already *Error are returned unchanged.
func Classify(op, path string, err error) error {
	if err == nil || errors.Is(err, ErrCancelled) {
		return err
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Op: op, Path: path, Kind: kindOf(err), Err: err}
}

// KindOf returns the Kind of err, or KindOther when err carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return kindOf(err)
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, syscall.EISDIR):
		return KindIsDirectory
	case errors.Is(err, ErrInvalidUTF8):
		return KindInvalidData
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, syscall.EINTR):
		return KindInterrupted
	default:
		return KindOther
	}
}
