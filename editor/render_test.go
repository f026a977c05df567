package editor

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/buffer"
)

type stubHighlighter struct {
	fn func(ctx LineContext) ([]HighlightSpan, error)
}

func (s *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return s.fn(ctx)
}

func TestRender_CursorAtEndOfLine(t *testing.T) {
	r := trueColorRenderer()
	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Reverse(true)}

	m, b := newTestModel("ab", Config{Style: st}, 10, 1)
	b.SetCursor(buffer.Pos{GraphemeCol: 2})
	m = m.Sync()

	want := st.Text.Render("a") + st.Text.Render("b") + st.Cursor.Render(" ")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SelectionCoversLineBreak(t *testing.T) {
	r := trueColorRenderer()
	st := Style{Text: r.NewStyle(), Selection: r.NewStyle().Background(lipgloss.Color("#444444"))}

	m, b := newTestModel("ab\ncd", Config{Style: st}, 10, 2)
	b.SetSelection(buffer.Range{Start: buffer.Pos{GraphemeCol: 1}, End: buffer.Pos{Row: 1, GraphemeCol: 1}})
	m = m.Blur()

	want := st.Text.Render("a") + st.Selection.Render("b") + st.Selection.Render(" ") + "\n" +
		st.Selection.Render("c") + st.Text.Render("d")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_TabsExpand(t *testing.T) {
	m, _ := newTestModel("\tx", Config{TabWidth: 4}, 10, 1)
	m = m.Blur()
	if got, want := m.renderContent(), "    x"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_PadsThemedBackground(t *testing.T) {
	r := trueColorRenderer()
	st := Style{Text: r.NewStyle().Background(lipgloss.Color("#002b36"))}

	m, _ := newTestModel("ab", Config{Style: st}, 5, 1)
	m = m.Blur()

	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("   ")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestHighlighting_CalledOnlyForVisibleLines(t *testing.T) {
	var rows []int
	h := &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
		rows = append(rows, ctx.Row)
		return nil, nil
	}}

	m, _ := newTestModel("a\nb\nc", Config{Highlighter: h}, 10, 1)
	rows = nil
	_ = m.renderContent()

	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("highlighter rows=%v, want [0]", rows)
	}
}

func TestHighlighting_PassesCursorContext(t *testing.T) {
	var got []LineContext
	h := &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
		got = append(got, ctx)
		return nil, nil
	}}
	m, b := newTestModel("ab\ncd", Config{Highlighter: h}, 10, 2)
	b.SetCursor(buffer.Pos{Row: 1, GraphemeCol: 1})
	got = nil
	_ = m.Sync()

	if len(got) != 2 {
		t.Fatalf("calls=%d, want 2", len(got))
	}
	if got[0].HasCursor || got[0].CursorGraphemeCol != -1 {
		t.Fatalf("row 0 context=%+v", got[0])
	}
	if !got[1].HasCursor || got[1].CursorGraphemeCol != 1 || got[1].Text != "cd" {
		t.Fatalf("row 1 context=%+v", got[1])
	}
}

func TestHighlighting_AppliesSpans(t *testing.T) {
	r := trueColorRenderer()
	st := Style{Text: r.NewStyle()}
	ul := r.NewStyle().Underline(true)

	m, _ := newTestModel("abcd", Config{
		Style: st,
		Highlighter: &stubHighlighter{fn: func(LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartGraphemeCol: 1, EndGraphemeCol: 3, Style: ul}}, nil
		}},
	}, 10, 1)
	m = m.Blur()

	hs := ul.Inherit(st.Text)
	want := st.Text.Render("a") + hs.Render("b") + hs.Render("c") + st.Text.Render("d")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	r := trueColorRenderer()
	st := Style{Text: r.NewStyle()}

	m, _ := newTestModel("abcd", Config{
		Style: st,
		Highlighter: &stubHighlighter{fn: func(LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartGraphemeCol: 1, EndGraphemeCol: 3, Style: r.NewStyle().Underline(true)}}, errors.New("boom")
		}},
	}, 10, 1)
	m = m.Blur()

	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("c") + st.Text.Render("d")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	spans := normalizeHighlightSpans([]HighlightSpan{
		{StartGraphemeCol: 5, EndGraphemeCol: 2},
		{StartGraphemeCol: 0, EndGraphemeCol: 3},
		{StartGraphemeCol: 4, EndGraphemeCol: 4},
		{StartGraphemeCol: 8, EndGraphemeCol: 99},
	}, 10)

	want := [][2]int{{0, 3}, {8, 10}}
	if len(spans) != len(want) {
		t.Fatalf("spans=%v, want %v", spans, want)
	}
	for i, sp := range spans {
		if sp.StartGraphemeCol != want[i][0] || sp.EndGraphemeCol != want[i][1] {
			t.Fatalf("span %d=[%d,%d), want %v", i, sp.StartGraphemeCol, sp.EndGraphemeCol, want[i])
		}
	}
}

func TestVisualLine_TabsAndWideGraphemes(t *testing.T) {
	vl := BuildVisualLine("a\tb", 4)
	if got := vl.VisualLen(); got != 5 {
		t.Fatalf("VisualLen=%d, want 5", got)
	}
	if got := vl.ColForCell(2); got != 1 {
		t.Fatalf("ColForCell(2)=%d, want 1", got)
	}
	if got := vl.CellForCol(2); got != 4 {
		t.Fatalf("CellForCol(2)=%d, want 4", got)
	}
	if got := vl.CellForCol(3); got != 5 {
		t.Fatalf("CellForCol(eol)=%d, want 5", got)
	}

	wide := BuildVisualLine("世x", 4)
	if got := wide.CellForCol(1); got != 2 {
		t.Fatalf("CellForCol(1)=%d, want 2", got)
	}
	if got := wide.ColForCell(1); got != 0 {
		t.Fatalf("ColForCell(1)=%d, want 0", got)
	}
	if got := wide.ColForCell(99); got != 2 {
		t.Fatalf("ColForCell(past end)=%d, want 2", got)
	}
}
