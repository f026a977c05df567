package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia/fileservice"
	"github.com/iw2rmb/rheia/internal/watch"
	"github.com/iw2rmb/rheia/session"
)

type (
	completionMsg  struct{ c session.Completion }
	requestMsg     struct{ req *fileservice.Request }
	diskChangedMsg struct{ path string }
	watchErrMsg    struct{ err error }
)

// runTask runs a session task off the update loop.
func runTask(ctx context.Context, t session.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		return completionMsg{c: t(ctx)}
	}
}

// waitForRequest delivers the next dialog request from the prompt broker.
func waitForRequest(ctx context.Context, p *fileservice.Prompt) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case req := <-p.Requests():
			return requestMsg{req: req}
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForWatch delivers the next change or error from the file watcher.
func waitForWatch(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case p, ok := <-w.Events():
			if !ok {
				return nil
			}
			return diskChangedMsg{path: p}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}
