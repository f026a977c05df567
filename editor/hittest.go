package editor

import "github.com/iw2rmb/rheia/buffer"

// screenToDocPos maps viewport-local cell coordinates to a document
// position. Gutter clicks land on column 0; everything is clamped into the
// document.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}

	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row}
	}

	vl := BuildVisualLine(m.buf.Line(row), m.cfg.tabWidth())
	return buffer.Pos{Row: row, GraphemeCol: vl.ColForCell(x + m.xOffset)}
}

// ScreenToDoc maps viewport-local screen coordinates to a document position.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}
