package buffer

import "github.com/iw2rmb/rheia/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := b.anchor()
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if r, ok := b.Selection(); ok && m.Unit == MoveGrapheme {
		// A plain left/right collapses the selection onto its edge.
		switch m.Dir {
		case DirLeft:
			nextCursor = r.Start
		case DirRight:
			nextCursor = r.End
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

// MoveTo places the cursor at p. With extend, the selection grows from the
// current anchor (or the previous cursor) to p.
func (b *Buffer) MoveTo(p Pos, extend bool) {
	if !extend {
		b.SetCursor(p)
		return
	}
	b.SetSelection(Range{Start: b.anchor(), End: p})
}

func (b *Buffer) anchor() Pos {
	if b.sel.active && b.sel.anchor != b.sel.end {
		return b.sel.anchor
	}
	return b.cursor
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Dir {
	case DirUp, DirDown:
		if m.Unit == MoveDoc {
			return b.moveDoc(p, m.Dir)
		}
		return b.moveVertical(p, m.Dir)
	case DirHome:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		return Pos{Row: p.Row, GraphemeCol: 0}
	case DirEnd:
		if m.Unit == MoveDoc {
			return b.moveDoc(p, m.Dir)
		}
		return Pos{Row: p.Row, GraphemeCol: len(b.lines[p.Row])}
	}

	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: 0}
	default:
		return p
	}
}

func (b *Buffer) moveVertical(p Pos, dir MoveDir) Pos {
	nr := p.Row - 1
	if dir == DirDown {
		nr = p.Row + 1
	}
	if nr < 0 || nr >= len(b.lines) {
		return p
	}
	return Pos{Row: nr, GraphemeCol: minInt(p.GraphemeCol, len(b.lines[nr]))}
}

// moveWord steps over one word. At a line edge it crosses onto the
// neighbouring line, like a grapheme move.
func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.GraphemeCol == 0 {
			return b.moveGrapheme(p, DirLeft)
		}
		return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(line, p.GraphemeCol)}
	case DirRight:
		if p.GraphemeCol >= len(line) {
			return b.moveGrapheme(p, DirRight)
		}
		return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(line, p.GraphemeCol)}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
	default:
		return p
	}
}

type charClass int

const (
	classSpace charClass = iota
	classPunct
	classWord
)

func classOf(g string) charClass {
	switch {
	case grapheme.IsSpace(g):
		return classSpace
	case grapheme.IsPunct(g):
		return classPunct
	default:
		return classWord
	}
}

// Word boundaries: skip whitespace, then a run of graphemes of one class
// (word characters or punctuation).
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && classOf(line[i-1]) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	c := classOf(line[i-1])
	for i > 0 && classOf(line[i-1]) == c {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && classOf(line[i]) == classSpace {
		i++
	}
	if i == len(line) {
		return i
	}
	c := classOf(line[i])
	for i < len(line) && classOf(line[i]) == c {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
