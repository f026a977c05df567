package editor

// Config configures the editor Model.
type Config struct {
	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style

	KeyMap KeyMap

	// Optional host integrations.
	Clipboard   Clipboard
	Highlighter Highlighter
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
