package buffer

// Len returns the document length in graphemes, counting each line break as
// one.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// Offset converts p into a document offset in [0, Len()].
func (b *Buffer) Offset(p Pos) int {
	p = b.clampPos(p)
	off := p.GraphemeCol
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off
}

// PosAt converts a document offset into a position. Offsets outside
// [0, Len()] are clamped.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, GraphemeCol: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}
