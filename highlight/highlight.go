// Package highlight provides chroma-based syntax highlighting for the editor.
//
// A Highlighter tokenises one line at a time, so constructs that span lines
// (block comments, fenced code) are only styled on their first line.
package highlight

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/editor"
	graphemeutil "github.com/iw2rmb/rheia/internal/grapheme"
)

const maxCachedLines = 2000

// Highlighter implements editor.Highlighter.
type Highlighter struct {
	lexer    chroma.Lexer
	style    *chroma.Style
	renderer *lipgloss.Renderer

	mu    sync.Mutex
	cache map[string][]editor.HighlightSpan
}

// New returns a highlighter for the file at path rendered in theme. Untitled
// documents and unknown extensions are highlighted as Markdown. A nil
// renderer uses lipgloss' default.
func New(path string, theme Theme, r *lipgloss.Renderer) *Highlighter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Highlighter{
		lexer:    lexerFor(path),
		style:    theme.Style(),
		renderer: r,
		cache:    make(map[string][]editor.HighlightSpan),
	}
}

// Language returns the lexer name, e.g. "Go" or "markdown".
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

func lexerFor(path string) chroma.Lexer {
	var l chroma.Lexer
	if path != "" {
		l = lexers.Match(filepath.Base(path))
	}
	if l == nil {
		l = lexers.Get("md")
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Text == "" {
		return nil, nil
	}

	h.mu.Lock()
	spans, ok := h.cache[ctx.Text]
	h.mu.Unlock()
	if ok {
		return spans, nil
	}

	spans, err := h.tokenise(ctx.Text)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	if len(h.cache) >= maxCachedLines {
		h.cache = make(map[string][]editor.HighlightSpan)
	}
	h.cache[ctx.Text] = spans
	h.mu.Unlock()
	return spans, nil
}

func (h *Highlighter) tokenise(text string) ([]editor.HighlightSpan, error) {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, err
	}

	var spans []editor.HighlightSpan
	col := 0
	for _, tok := range it.Tokens() {
		v := strings.TrimRight(tok.Value, "\n")
		n := graphemeutil.Count(v)
		if n == 0 {
			continue
		}
		if st, ok := h.styleFor(tok.Type); ok {
			spans = append(spans, editor.HighlightSpan{
				StartGraphemeCol: col,
				EndGraphemeCol:   col + n,
				Style:            st,
			})
		}
		col += n
	}
	return spans, nil
}

// styleFor maps a token type to a lipgloss style. Types that only inherit
// the base text color yield no span.
func (h *Highlighter) styleFor(tt chroma.TokenType) (lipgloss.Style, bool) {
	e := h.style.Get(tt)
	base := h.style.Get(chroma.Background)

	st := h.renderer.NewStyle()
	set := false
	if e.Colour.IsSet() && e.Colour != base.Colour {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
		set = true
	}
	if e.Background.IsSet() && e.Background != base.Background {
		st = st.Background(lipgloss.Color(e.Background.String()))
		set = true
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
		set = true
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
		set = true
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
		set = true
	}
	return st, set
}

// EditorStyle returns the editor style for theme on renderer r.
func EditorStyle(theme Theme, r *lipgloss.Renderer) editor.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := theme.Palette()
	st := editor.StyleForBackground(p.Foreground, p.Background, p.Selection, p.Dim)
	st.Gutter = st.Gutter.Renderer(r)
	st.LineNum = st.LineNum.Renderer(r)
	st.LineNumActive = st.LineNumActive.Renderer(r)
	st.Text = st.Text.Renderer(r)
	st.Selection = st.Selection.Renderer(r)
	st.Cursor = st.Cursor.Renderer(r)
	return st
}
