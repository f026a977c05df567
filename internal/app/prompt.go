package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia/fileservice"
)

// prompt is the in-terminal file dialog answering one fileservice.Request:
// a file picker for open, a path input for save.
type prompt struct {
	req *fileservice.Request
	dir string

	picker filepicker.Model
	input  textinput.Model
}

func newPrompt(req *fileservice.Request, width, height int) (*prompt, tea.Cmd) {
	dir := req.StartDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	p := &prompt{req: req, dir: dir}

	if req.Kind == fileservice.RequestSave {
		ti := textinput.New()
		ti.Prompt = "Save as: "
		ti.Placeholder = "file name"
		ti.Width = maxInt(width-len(ti.Prompt)-2, 10)
		if dir != "" {
			ti.SetValue(dir + string(filepath.Separator))
			ti.CursorEnd()
		}
		p.input = ti
		return p, p.input.Focus()
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	fp.Height = maxInt(height-1, 1)
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	// esc cancels the dialog instead of going up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	p.picker = fp
	return p, p.picker.Init()
}

func (p *prompt) title() string {
	if p.req.Kind == fileservice.RequestSave {
		return "Save file"
	}
	return "Open file"
}

// update feeds msg to the dialog. done reports that the request was
// answered and the prompt should close.
func (p *prompt) update(msg tea.Msg, keys KeyMap) (done bool, cmd tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Cancel) {
		p.req.Cancel()
		return true, nil
	}

	if p.req.Kind == fileservice.RequestSave {
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Accept) {
			path := p.savePath()
			if path == "" {
				p.req.Cancel()
			} else {
				p.req.Resolve(path)
			}
			return true, nil
		}
		p.input, cmd = p.input.Update(msg)
		return false, cmd
	}

	p.picker, cmd = p.picker.Update(msg)
	if ok, path := p.picker.DidSelectFile(msg); ok {
		p.req.Resolve(path)
		return true, cmd
	}
	return false, cmd
}

// savePath resolves the typed path against the start directory. A path
// naming a directory is not a file name.
func (p *prompt) savePath() string {
	v := strings.TrimSpace(p.input.Value())
	if v == "" || strings.HasSuffix(v, string(filepath.Separator)) {
		return ""
	}
	if !filepath.IsAbs(v) && p.dir != "" {
		v = filepath.Join(p.dir, v)
	}
	return filepath.Clean(v)
}

func (p *prompt) view() string {
	if p.req.Kind == fileservice.RequestSave {
		return p.input.View()
	}
	return p.picker.View()
}

// cancel answers the request if it is still open, e.g. on quit.
func (p *prompt) cancel() { p.req.Cancel() }
