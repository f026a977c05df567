package buffer

import (
	"strings"

	"github.com/iw2rmb/rheia/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// It reports whether the text changed.
func (b *Buffer) InsertText(s string) bool {
	if s == "" {
		return b.DeleteSelection()
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	return b.edit(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() bool {
	return b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return false
	}

	if col > 0 {
		return b.edit(Range{
			Start: Pos{Row: row, GraphemeCol: col - 1},
			End:   Pos{Row: row, GraphemeCol: col},
		}, "")
	}

	// Join with previous line.
	prevRow := row - 1
	return b.edit(Range{
		Start: Pos{Row: prevRow, GraphemeCol: len(b.lines[prevRow])},
		End:   Pos{Row: row, GraphemeCol: 0},
	}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return false
	}

	if col < len(b.lines[row]) {
		return b.edit(Range{
			Start: Pos{Row: row, GraphemeCol: col},
			End:   Pos{Row: row, GraphemeCol: col + 1},
		}, "")
	}

	// Join with next line.
	return b.edit(Range{
		Start: Pos{Row: row, GraphemeCol: col},
		End:   Pos{Row: row + 1, GraphemeCol: 0},
	}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.edit(r, "")
}

// ReplaceAll replaces the whole text. The cursor ends after the inserted text
// and the change is undoable.
func (b *Buffer) ReplaceAll(text string) bool {
	last := len(b.lines) - 1
	return b.edit(Range{
		Start: Pos{Row: 0, GraphemeCol: 0},
		End:   Pos{Row: last, GraphemeCol: len(b.lines[last])},
	}, text)
}

func (b *Buffer) edit(r Range, text string) bool {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.hist.record(prev)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, false
	}

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)
	ins := splitLines(text)

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]string{nil}
	}

	b.lines = out
	return nextCursor, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.GraphemeCol
	endCol := r.End.GraphemeCol

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
