package buffer

import (
	"fmt"
	"strings"
)

// Status is the cursor summary shown in a status bar.
type Status struct {
	Line   int // 1-based
	Column int // 1-based, in graphemes

	Selected   bool
	Chars      int // graphemes in the selection, line breaks included
	LineBreaks int
}

func (b *Buffer) Status() Status {
	st := Status{
		Line:   b.cursor.Row + 1,
		Column: b.cursor.GraphemeCol + 1,
	}
	r, ok := b.Selection()
	if !ok {
		return st
	}
	st.Selected = true
	st.Chars = b.Offset(r.End) - b.Offset(r.Start)
	st.LineBreaks = r.End.Row - r.Start.Row
	return st
}

func (s Status) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d", s.Line, s.Column)
	if !s.Selected {
		return sb.String()
	}
	if s.LineBreaks > 0 {
		fmt.Fprintf(&sb, " (%d chars, %d line breaks)", s.Chars, s.LineBreaks)
	} else {
		fmt.Fprintf(&sb, " (%d chars)", s.Chars)
	}
	return sb.String()
}
