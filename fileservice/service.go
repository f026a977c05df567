// Package fileservice is the editor's file collaborator: dialogs that pick a
// path and plain UTF-8 file I/O.
//
// Dialog methods report a cancelled dialog as ok == false with a nil error.
// The orchestration helpers (OpenFile, LoadFile, SaveFile) turn that into
// ErrCancelled and classify every other failure as an *Error.
package fileservice

import "context"

// Dialogs asks the user for a path.
type Dialogs interface {
	OpenDialog(ctx context.Context) (path string, ok bool, err error)
	SaveDialog(ctx context.Context) (path string, ok bool, err error)
}

// Files reads and writes whole files.
type Files interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, text string) error
}

type Service interface {
	Dialogs
	Files
}

type service struct {
	Dialogs
	Files
}

// Combine joins a dialog backend and a file backend.
func Combine(d Dialogs, f Files) Service {
	return service{Dialogs: d, Files: f}
}

// OpenFile shows the open dialog once and reads the picked file.
func OpenFile(ctx context.Context, s Service) (path, text string, err error) {
	path, ok, err := s.OpenDialog(ctx)
	if err != nil {
		return "", "", Classify(OpDialog, "", err)
	}
	if !ok {
		return "", "", ErrCancelled
	}
	text, err = LoadFile(ctx, s, path)
	if err != nil {
		return "", "", err
	}
	return path, text, nil
}

// LoadFile reads path without any dialog.
func LoadFile(ctx context.Context, f Files, path string) (string, error) {
	text, err := f.Read(ctx, path)
	if err != nil {
		return "", Classify(OpRead, path, err)
	}
	return text, nil
}

// SaveFile writes text to path. An empty path shows the save dialog once
// first. It returns the path written.
func SaveFile(ctx context.Context, s Service, path, text string) (string, error) {
	if path == "" {
		p, ok, err := s.SaveDialog(ctx)
		if err != nil {
			return "", Classify(OpDialog, "", err)
		}
		if !ok {
			return "", ErrCancelled
		}
		path = p
	}
	if err := s.Write(ctx, path, text); err != nil {
		return "", Classify(OpWrite, path, err)
	}
	return path, nil
}
