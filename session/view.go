package session

import (
	"github.com/iw2rmb/rheia/buffer"
	"github.com/iw2rmb/rheia/highlight"
)

const (
	maxLabelLen  = 60
	labelTailLen = 40
)

// View is a read-only snapshot for rendering.
type View struct {
	Path    string
	Dirty   bool
	Busy    bool
	Pending Op
	Status  buffer.Status
	Theme   highlight.Theme
	Content string
	Err     error
	Stale   bool
}

func (s *Session) View() View {
	return View{
		Path:    s.path,
		Dirty:   s.dirty,
		Busy:    s.Busy(),
		Pending: s.pending,
		Status:  s.buf.Status(),
		Theme:   s.theme,
		Content: s.buf.Text(),
		Err:     s.lastErr,
		Stale:   s.stale,
	}
}

// FileLabel is the path as shown to the user: "New File" when untitled, and
// long paths shortened to their tail.
func (v View) FileLabel() string {
	if v.Path == "" {
		return "New File"
	}
	r := []rune(v.Path)
	if len(r) > maxLabelLen {
		return "..." + string(r[len(r)-labelTailLen:])
	}
	return v.Path
}
