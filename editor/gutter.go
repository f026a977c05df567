package editor

import "fmt"

// LineNumberWidth returns the line-number gutter width for lineCount,
// including the separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return LineNumberWidth(m.buf.LineCount())
}

func (m *Model) renderGutter(row, digits int) string {
	st := m.cfg.Style
	num := st.LineNum
	if m.focused && row == m.buf.Cursor().Row {
		num = st.LineNumActive
	}
	return num.Render(fmt.Sprintf("%*d", digits, row+1)) + st.Gutter.Render(" ")
}
