package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol are grapheme indices in the line,
	// half-open [StartGraphemeCol, EndGraphemeCol).
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the cursor column if the cursor is on this row;
	// otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool
}

// Highlighter styles one line at a time. It is only asked for rows that are
// on screen. An error drops highlighting for that line.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func (m *Model) highlightForLine(row int, text string, lineLen int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	cursor := m.buf.Cursor()
	ctx := LineContext{Row: row, Text: text, CursorGraphemeCol: -1}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, lineLen)
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	// Overlapping spans are dropped; the earliest one wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartGraphemeCol < merged[len(merged)-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// styleAt returns the span style covering col, if any. spans must be
// normalized.
func styleAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].EndGraphemeCol > col })
	if i < len(spans) && spans[i].StartGraphemeCol <= col {
		return spans[i].Style, true
	}
	return lipgloss.Style{}, false
}
