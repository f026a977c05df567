package session

import (
	"context"

	"github.com/iw2rmb/rheia/fileservice"
)

// Tasks capture everything they need at dispatch time and never read the
// session afterwards.

func (s *Session) openTask() Task {
	files := s.files
	return func(ctx context.Context) Completion {
		path, text, err := fileservice.OpenFile(ctx, files)
		return Opened{Path: path, Text: text, Err: err}
	}
}

func (s *Session) loadTask(path string) Task {
	files := s.files
	return func(ctx context.Context) Completion {
		text, err := fileservice.LoadFile(ctx, files, path)
		return Opened{Path: path, Text: text, Err: err}
	}
}

func (s *Session) saveTask(path, text string) Task {
	files := s.files
	return func(ctx context.Context) Completion {
		written, err := fileservice.SaveFile(ctx, files, path, text)
		if err != nil {
			written = path
		}
		return Saved{Path: written, Text: text, Err: err}
	}
}

func (s *Session) checkTask(path string) Task {
	files := s.files
	return func(ctx context.Context) Completion {
		text, err := fileservice.LoadFile(ctx, files, path)
		return Checked{Path: path, Text: text, Err: err}
	}
}
