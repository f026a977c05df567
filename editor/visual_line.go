package editor

import (
	"strings"

	graphemeutil "github.com/iw2rmb/rheia/internal/grapheme"
)

type VisualToken struct {
	// Text is the rendered token text. Tabs are expanded to spaces.
	Text string

	// StartCell is the visual cell offset where this token begins.
	StartCell int

	// CellWidth is the number of terminal cells this token occupies.
	CellWidth int

	// GraphemeCol is the document grapheme this token renders.
	GraphemeCol int
}

// VisualLine is the cell layout of one logical line.
type VisualLine struct {
	GraphemeLen int

	Tokens []VisualToken

	// cellToCol maps each visual cell to a grapheme column. Every cell of a
	// wide grapheme maps to the same column.
	cellToCol []int
}

func BuildVisualLine(line string, tabWidth int) VisualLine {
	graphemes := graphemeutil.Split(line)
	vl := VisualLine{
		GraphemeLen: len(graphemes),
		Tokens:      make([]VisualToken, 0, len(graphemes)),
		cellToCol:   make([]int, 0, len(graphemes)),
	}

	cell := 0
	for col, g := range graphemes {
		w := graphemeutil.Width(g, cell, tabWidth)
		if w < 1 {
			// Zero-width clusters still get a cell so the cursor can land on them.
			w = 1
		}
		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}
		vl.Tokens = append(vl.Tokens, VisualToken{
			Text:        text,
			StartCell:   cell,
			CellWidth:   w,
			GraphemeCol: col,
		})
		for i := 0; i < w; i++ {
			vl.cellToCol = append(vl.cellToCol, col)
		}
		cell += w
	}
	return vl
}

func (vl VisualLine) VisualLen() int { return len(vl.cellToCol) }

// ColForCell maps a visual cell to a grapheme column. Cells past the end of
// the line map to the line end.
func (vl VisualLine) ColForCell(x int) int {
	if x < 0 {
		return 0
	}
	if x >= len(vl.cellToCol) {
		return vl.GraphemeLen
	}
	return vl.cellToCol[x]
}

// CellForCol maps a grapheme column to the first cell it occupies. The line
// end maps to VisualLen().
func (vl VisualLine) CellForCol(col int) int {
	if col <= 0 || len(vl.Tokens) == 0 {
		return 0
	}
	if col >= len(vl.Tokens) {
		return vl.VisualLen()
	}
	return vl.Tokens[col].StartCell
}
