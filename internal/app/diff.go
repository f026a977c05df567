package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff compares before and after line by line.
func lineDiff(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	// Cleanup runs on the line-encoded form so hunks never split a line.
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, diffLine{op: d.Type, text: l})
		}
	}
	return out
}

// diffView shows the unsaved changes against the last loaded or saved text.
type diffView struct {
	vp      viewport.Model
	added   int
	removed int
}

func newDiffView(baseline, current string, width, height int, st chrome) *diffView {
	lines := lineDiff(baseline, current)
	d := &diffView{vp: viewport.New(width, maxInt(height-1, 0))}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch l.op {
		case diffmatchpatch.DiffInsert:
			d.added++
			sb.WriteString(st.added.Render("+ " + l.text))
		case diffmatchpatch.DiffDelete:
			d.removed++
			sb.WriteString(st.removed.Render("- " + l.text))
		default:
			sb.WriteString(st.overlay.Render("  " + l.text))
		}
	}
	if d.added == 0 && d.removed == 0 {
		d.vp.SetContent(st.overlay.Render("No unsaved changes."))
	} else {
		d.vp.SetContent(sb.String())
	}
	return d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
