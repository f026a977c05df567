package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rheia/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	top, bottom := m.visibleRows()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	width := m.contentWidth()
	if width > 0 {
		right = left + width
	}
	// Themed backgrounds must fill the whole row.
	pad := width > 0 && hasBackground(m.cfg.Style.Text)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		text := m.buf.Line(row)
		vl := BuildVisualLine(text, m.cfg.tabWidth())

		var spans []HighlightSpan
		if row >= top && row < bottom {
			spans = m.highlightForLine(row, text, vl.GraphemeLen)
		}

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits))
		}
		line, cells := renderVisualLine(m.cfg.Style, vl, row, cursor, m.focused, sel, selOK, spans, left, right)
		sb.WriteString(line)
		if pad && cells < width {
			sb.WriteString(m.cfg.Style.Text.Render(strings.Repeat(" ", width-cells)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func hasBackground(s lipgloss.Style) bool {
	_, none := s.GetBackground().(lipgloss.NoColor)
	return !none
}

// selectionColsForRow returns the selected grapheme columns of row. A
// selection that continues past the row end covers the line break too, which
// is reported as endCol == lineLen+1.
func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (startCol, endCol int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	startCol = 0
	if row == sel.Start.Row {
		startCol = sel.Start.GraphemeCol
	}
	endCol = lineLen + 1
	if row == sel.End.Row {
		endCol = sel.End.GraphemeCol
	}
	return startCol, endCol, startCol < endCol
}

// renderVisualLine renders the cells [left, right) of vl and returns the
// number of cells written.
func renderVisualLine(
	st Style,
	vl VisualLine,
	row int,
	cursor buffer.Pos,
	focused bool,
	sel buffer.Range,
	selOK bool,
	highlights []HighlightSpan,
	left, right int,
) (string, int) {
	hasCursor := focused && row == cursor.Row
	cursorCol := -1
	if hasCursor {
		cursorCol = clampInt(cursor.GraphemeCol, 0, vl.GraphemeLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, vl.GraphemeLen)

	var sb strings.Builder
	cells := 0
	for _, tok := range vl.Tokens {
		segL := tok.StartCell
		segR := tok.StartCell + tok.CellWidth
		spanL := maxInt(segL, left)
		spanR := minInt(segR, right)
		if spanL >= spanR {
			continue
		}

		style := st.Text
		switch {
		case tok.GraphemeCol == cursorCol:
			style = st.Cursor
		case hasSel && tok.GraphemeCol >= selStart && tok.GraphemeCol < selEnd:
			style = st.Selection
		default:
			if hs, ok := styleAt(highlights, tok.GraphemeCol); ok {
				style = hs.Inherit(st.Text)
			}
		}

		text := tok.Text
		if spanR-spanL != tok.CellWidth {
			// Partially visible wide grapheme: keep alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}
		sb.WriteString(style.Render(text))
		cells += spanR - spanL
	}

	// End of line: a cursor placeholder, or a selected line break.
	eol := vl.VisualLen()
	if eol >= left && eol < right {
		switch {
		case cursorCol == vl.GraphemeLen:
			sb.WriteString(st.Cursor.Render(" "))
			cells++
		case hasSel && selEnd > vl.GraphemeLen:
			sb.WriteString(st.Selection.Render(" "))
			cells++
		}
	}
	return sb.String(), cells
}
