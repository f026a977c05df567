package buffer

import "testing"

func TestBuffer_MoveGrapheme_CrossesLines(t *testing.T) {
	b := New("ab\nc", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{})
	v := b.Version()
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if b.Version() != v {
		t.Fatalf("move at document start bumped version")
	}
}

func TestBuffer_MoveVertical_ClampsColumn(t *testing.T) {
	b := New("abcd\nx\nabc", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Move_Extend(t *testing.T) {
	b := New("abcd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	r, ok := b.Selection()
	want := Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 3}}
	if !ok || r != want {
		t.Fatalf("selection=%v (%v), want %v", r, ok, want)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	if _, ok := b.Selection(); ok {
		t.Fatalf("returning to the anchor must clear the selection")
	}
}

func TestBuffer_Move_CollapsesSelection(t *testing.T) {
	sel := Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 3}}

	b := New("abcd", Options{})
	b.SetSelection(sel)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != sel.Start {
		t.Fatalf("left: cursor=%v, want %v", got, sel.Start)
	}

	b.SetSelection(sel)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != sel.End {
		t.Fatalf("right: cursor=%v, want %v", got, sel.End)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection collapsed")
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("foo.bar  baz", Options{})

	for _, want := range []int{3, 4, 7, 12} {
		b.Move(Move{Unit: MoveWord, Dir: DirRight})
		if got := b.Cursor().GraphemeCol; got != want {
			t.Fatalf("word right: col=%d, want %d", got, want)
		}
	}
	for _, want := range []int{9, 4, 3, 0} {
		b.Move(Move{Unit: MoveWord, Dir: DirLeft})
		if got := b.Cursor().GraphemeCol; got != want {
			t.Fatalf("word left: col=%d, want %d", got, want)
		}
	}
}

func TestBuffer_MoveWord_CrossesLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_MoveTo(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})

	b.MoveTo(Pos{Row: 0, GraphemeCol: 4}, true)
	if got := b.SelectedText(); got != "ell" {
		t.Fatalf("selected=%q, want %q", got, "ell")
	}

	// Dragging back past the anchor keeps the anchor.
	b.MoveTo(Pos{Row: 0, GraphemeCol: 0}, true)
	if got := b.SelectedText(); got != "h" {
		t.Fatalf("selected=%q, want %q", got, "h")
	}

	b.MoveTo(Pos{Row: 3, GraphemeCol: 2}, false)
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain MoveTo must clear the selection")
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_MoveGrapheme_ZWJCluster(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	b := New(family+"x", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor().GraphemeCol; got != 1 {
		t.Fatalf("col=%d, want 1", got)
	}
}
