package buffer

import "testing"

func TestNew_TextRoundTrip(t *testing.T) {
	cases := []struct {
		in    string
		lines int
	}{
		{in: "", lines: 1},
		{in: "a", lines: 1},
		{in: "a\n", lines: 2},
		{in: "a\nbc\n\nd", lines: 4},
	}
	for _, tc := range cases {
		b := New(tc.in, Options{})
		if got := b.Text(); got != tc.in {
			t.Fatalf("Text()=%q, want %q", got, tc.in)
		}
		if got := b.LineCount(); got != tc.lines {
			t.Fatalf("LineCount(%q)=%d, want %d", tc.in, got, tc.lines)
		}
		if got := b.Cursor(); got != (Pos{}) {
			t.Fatalf("cursor=%v, want origin", got)
		}
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(Pos{Row: 999, GraphemeCol: 999})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.Version() != 1 || b.TextVersion() != 0 {
		t.Fatalf("versions=(%d,%d), want (1,0)", b.Version(), b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})
	if b.Version() != 1 {
		t.Fatalf("no-op SetCursor bumped version to %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesAndClamps(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, GraphemeCol: 99},
		End:   Pos{Row: 0, GraphemeCol: -1},
	})
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 1, GraphemeCol: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got := b.SelectedText(); got != "a\nbc" {
		t.Fatalf("selected=%q, want %q", got, "a\nbc")
	}

	raw, _ := b.SelectionRaw()
	if raw.Start != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("raw start=%v, want anchor preserved", raw.Start)
	}

	v := b.Version()
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}
	b.ClearSelection()
	if b.Version() != v+1 {
		t.Fatalf("second ClearSelection bumped version")
	}
}

func TestBuffer_EmptySelectionIsNoSelection(t *testing.T) {
	b := New("abc", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 2}, End: Pos{Row: 0, GraphemeCol: 2}})
	if _, ok := b.Selection(); ok {
		t.Fatalf("empty range reported as selection")
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SelectAll(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.SelectAll()
	if got := b.SelectedText(); got != "one\ntwo" {
		t.Fatalf("selected=%q", got)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	empty := New("", Options{})
	empty.SelectAll()
	if _, ok := empty.Selection(); ok {
		t.Fatalf("select all on empty document produced a selection")
	}
}

func TestComparePosAndClamp(t *testing.T) {
	if ComparePos(Pos{Row: 0, GraphemeCol: 9}, Pos{Row: 1}) >= 0 {
		t.Fatalf("row must dominate column")
	}
	if ComparePos(Pos{Row: 1, GraphemeCol: 2}, Pos{Row: 1, GraphemeCol: 1}) <= 0 {
		t.Fatalf("expected > 0")
	}
	if ComparePos(Pos{Row: 3, GraphemeCol: 4}, Pos{Row: 3, GraphemeCol: 4}) != 0 {
		t.Fatalf("expected 0")
	}

	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }
	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{}},
		{in: Pos{Row: 999, GraphemeCol: 999}, want: Pos{Row: 2, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 5}, want: Pos{Row: 1}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
