package editor

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w < 0 {
		return 0
	}
	return w
}

// visibleRows returns the half-open row range on screen.
func (m *Model) visibleRows() (start, end int) {
	if m.buf == nil {
		return 0, 0
	}
	n := m.buf.LineCount()
	start = clampInt(m.viewport.YOffset, 0, n)
	end = clampInt(start+m.visibleRowCount(), start, n)
	return start, end
}

// followCursor scrolls the minimum needed to keep the cursor cell visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		if cur.Row < y {
			m.viewport.SetYOffset(cur.Row)
			m.rebuildContent()
		} else if cur.Row >= y+h {
			m.viewport.SetYOffset(cur.Row - h + 1)
			m.rebuildContent()
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	vl := BuildVisualLine(m.buf.Line(cur.Row), m.cfg.tabWidth())
	cell := vl.CellForCol(cur.GraphemeCol)
	width := 1
	if cur.GraphemeCol < len(vl.Tokens) {
		width = vl.Tokens[cur.GraphemeCol].CellWidth
	}

	next := m.xOffset
	if cell < next {
		next = cell
	} else if cell+width > next+w {
		next = cell + width - w
	}
	next = maxInt(next, 0)
	if next != m.xOffset {
		m.xOffset = next
		m.rebuildContent()
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
