// Package grapheme splits and measures user-perceived characters: the unit
// for cursor columns, character counts and cell widths.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var c string
		c, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, c)
	}
	return out
}

func Count(text string) int { return uniseg.GraphemeClusterCount(text) }

func Join(clusters []string) string { return strings.Join(clusters, "") }

// IsSpace reports whether cluster is non-empty and all whitespace.
func IsSpace(cluster string) bool { return every(cluster, unicode.IsSpace) }

// IsPunct reports whether cluster is non-empty and all punctuation.
func IsPunct(cluster string) bool { return every(cluster, unicode.IsPunct) }

func every(cluster string, pred func(rune) bool) bool {
	if cluster == "" {
		return false
	}
	return strings.IndexFunc(cluster, func(r rune) bool { return !pred(r) }) < 0
}

// Width is the cell width of cluster drawn at visual column col. A tab
// reaches the next multiple of tabWidth.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return max(uniseg.StringWidth(cluster), 0)
}

// TabAdvance is the number of cells a tab takes at visual column col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - max(col, 0)%tabWidth
}
