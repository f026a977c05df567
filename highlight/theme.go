package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme names a chroma style.
type Theme string

const (
	SolarizedDark  Theme = "solarized-dark"
	SolarizedLight Theme = "solarized-light"
	Monokai        Theme = "monokai"
	Dracula        Theme = "dracula"
	GitHub         Theme = "github"
	Nord           Theme = "nord"
	Snazzy         Theme = "base16-snazzy"
	Gruvbox        Theme = "gruvbox"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = SolarizedDark

var themes = []Theme{SolarizedDark, SolarizedLight, Monokai, Dracula, GitHub, Nord, Snazzy, Gruvbox}

// All returns the themes in pick-list order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Parse resolves a theme name case-insensitively. The empty name is the
// default theme.
func Parse(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTheme, nil
	}
	for _, t := range themes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", name)
}

func (t Theme) String() string { return string(t) }

// Next returns the theme after t in pick-list order, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range themes {
		if th == t {
			return themes[(i+1)%len(themes)]
		}
	}
	return DefaultTheme
}

// Style returns the chroma style backing t. Unknown themes get chroma's
// fallback style.
func (t Theme) Style() *chroma.Style {
	if s, ok := styles.Registry[string(t)]; ok {
		return s
	}
	return styles.Fallback
}

// IsDark reports whether the theme's background is dark.
func (t Theme) IsDark() bool {
	bg := t.Style().Get(chroma.Background).Background
	if !bg.IsSet() {
		return true
	}
	return bg.Brightness() < 0.5
}

// Palette holds the chrome colors derived from a theme.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Selection  lipgloss.Color
	Dim        lipgloss.Color
	Accent     lipgloss.Color
}

// Palette derives chrome colors from the theme's background, line highlight
// and comment entries. Missing entries fall back to neutral greys.
func (t Theme) Palette() Palette {
	st := t.Style()
	dark := t.IsDark()

	p := Palette{
		Foreground: "#d0d0d0",
		Background: "#1c1c1c",
		Selection:  "#3a3a3a",
		Dim:        "#6c6c6c",
		Accent:     "#5f87d7",
	}
	if !dark {
		p = Palette{
			Foreground: "#303030",
			Background: "#f5f5f5",
			Selection:  "#d0d0d0",
			Dim:        "#a0a0a0",
			Accent:     "#005fd7",
		}
	}

	bg := st.Get(chroma.Background)
	if bg.Background.IsSet() {
		p.Background = lipgloss.Color(bg.Background.String())
	}
	if bg.Colour.IsSet() {
		p.Foreground = lipgloss.Color(bg.Colour.String())
	}
	if lh := st.Get(chroma.LineHighlight).Background; lh.IsSet() && lh != bg.Background {
		p.Selection = lipgloss.Color(lh.String())
	}
	if c := st.Get(chroma.Comment).Colour; c.IsSet() {
		p.Dim = lipgloss.Color(c.String())
	}
	if c := st.Get(chroma.Keyword).Colour; c.IsSet() {
		p.Accent = lipgloss.Color(c.String())
	}
	return p
}
