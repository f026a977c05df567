package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})

	if !b.InsertText("X\nY") {
		t.Fatalf("InsertText reported no change")
	}
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version=%d, want 1", got)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}})

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 0})

	if !b.DeleteBackward() {
		t.Fatalf("expected join")
	}
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{})
	v := b.Version()
	if b.DeleteBackward() {
		t.Fatalf("backspace at document start changed text")
	}
	if b.Version() != v {
		t.Fatalf("no-op bumped version")
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})
	if b.DeleteForward() {
		t.Fatalf("delete at document end changed text")
	}
}

func TestBuffer_DeleteSelection_MultiLine(t *testing.T) {
	b := New("abc\ndef\nghi", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 1}})

	b.DeleteBackward()
	if got, want := b.Text(), "ahi"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_RemovesWholeCluster(t *testing.T) {
	b := New("e\u0301x", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_ReplaceAll(t *testing.T) {
	b := New("old\ntext", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})

	if !b.ReplaceAll("new") {
		t.Fatalf("ReplaceAll reported no change")
	}
	if got, want := b.Text(), "new"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.ReplaceAll("new") {
		t.Fatalf("identical replacement reported a change")
	}

	b.Undo()
	if got, want := b.Text(), "old\ntext"; got != want {
		t.Fatalf("after undo text=%q, want %q", got, want)
	}
}
