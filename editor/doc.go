// Package editor provides a Bubble Tea editing surface for a buffer.Buffer.
//
// The editor renders the buffer and translates keyboard and mouse input into
// buffer.Action values. It never mutates the buffer itself: the host decides
// whether an action is applied, then calls Sync so the view catches up.
package editor
