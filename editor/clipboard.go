package editor

// Clipboard backs copy, cut and paste. A failing clipboard turns those keys
// into no-ops.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
