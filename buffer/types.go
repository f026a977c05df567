package buffer

import "cmp"

// Pos is a 0-based (row, grapheme column) position. Column n sits before the
// n-th grapheme cluster of the row; the line length is the position after
// its last cluster.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range spans [Start, End). Only normalized ranges have Start <= End.
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions in reading order.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.GraphemeCol, b.GraphemeCol)
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos moves p to the nearest position inside a document of rowCount
// rows (at least one) whose row lengths lineLen reports.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := clampInt(p.Row, 0, max(rowCount, 1)-1)
	n := 0
	if lineLen != nil {
		n = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, n)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	r.Start = ClampPos(r.Start, rowCount, lineLen)
	r.End = ClampPos(r.End, rowCount, lineLen)
	return r
}
