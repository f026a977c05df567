package fileservice

import (
	"context"
	"sync"
)

type RequestKind uint8

const (
	RequestOpen RequestKind = iota
	RequestSave
)

func (k RequestKind) String() string {
	if k == RequestSave {
		return "save"
	}
	return "open"
}

type answer struct {
	path string
	ok   bool
	err  error
}

// Request is one pending dialog. The UI answers it exactly once with
// Resolve, Cancel or Fail; later answers are ignored.
type Request struct {
	Kind     RequestKind
	StartDir string

	once  sync.Once
	reply chan answer
}

func (r *Request) Resolve(path string) { r.answer(answer{path: path, ok: path != ""}) }

func (r *Request) Cancel() { r.answer(answer{}) }

func (r *Request) Fail(err error) { r.answer(answer{err: err}) }

func (r *Request) answer(a answer) {
	r.once.Do(func() { r.reply <- a })
}

// Prompt implements Dialogs by handing each dialog to the UI as a Request
// and waiting for the answer. Calls block until the UI answers or ctx ends.
type Prompt struct {
	startDir string
	requests chan *Request
}

func NewPrompt(startDir string) *Prompt {
	return &Prompt{
		startDir: startDir,
		requests: make(chan *Request),
	}
}

// Requests delivers dialogs that the UI must show.
func (p *Prompt) Requests() <-chan *Request { return p.requests }

func (p *Prompt) OpenDialog(ctx context.Context) (string, bool, error) {
	return p.ask(ctx, RequestOpen)
}

func (p *Prompt) SaveDialog(ctx context.Context) (string, bool, error) {
	return p.ask(ctx, RequestSave)
}

func (p *Prompt) ask(ctx context.Context, kind RequestKind) (string, bool, error) {
	req := &Request{
		Kind:     kind,
		StartDir: p.startDir,
		reply:    make(chan answer, 1),
	}

	select {
	case p.requests <- req:
	case <-ctx.Done():
		return "", false, ctx.Err()
	}

	select {
	case a := <-req.reply:
		return a.path, a.ok, a.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}
