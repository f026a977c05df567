package app

import (
	"io/fs"
	"net/url"
	"os"
	"strings"
)

// droppedPath recognises a terminal file drop: a paste that is exactly one
// path to an existing regular file. Terminals deliver drops quoted, as
// file:// URLs, or with backslash-escaped spaces.
func droppedPath(s string, stat func(string) (fs.FileInfo, error)) (string, bool) {
	if stat == nil {
		stat = os.Stat
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "\n\r") {
		return "", false
	}

	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if rest, ok := strings.CutPrefix(s, "file://"); ok {
		p, err := url.PathUnescape(rest)
		if err != nil {
			return "", false
		}
		s = p
	} else {
		s = strings.ReplaceAll(s, `\ `, " ")
	}

	info, err := stat(s)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return s, true
}
