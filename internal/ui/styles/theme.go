// Package styles maps surface styles onto terminal colors.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracknav/internal/ui/screen"
)

// Theme defines the terminal colors behind each screen.Color.
type Theme struct {
	Black lipgloss.TerminalColor
	White lipgloss.TerminalColor
	Cyan  lipgloss.TerminalColor
}

var defaultTheme = Theme{
	Black: lipgloss.ANSIColor(0),
	White: lipgloss.ANSIColor(15),
	Cyan:  lipgloss.ANSIColor(6),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

func (t *Theme) color(c screen.Color) (lipgloss.TerminalColor, bool) {
	switch c {
	case screen.ColorBlack:
		return t.Black, true
	case screen.ColorWhite:
		return t.White, true
	case screen.ColorCyan:
		return t.Cyan, true
	case screen.ColorDefault:
	}
	return nil, false
}

// Style converts a surface style to a lipgloss style.
func (t *Theme) Style(s screen.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Attr == screen.AttrBold {
		st = st.Bold(true)
	}
	if fg, ok := t.color(s.Fg); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := t.color(s.Bg); ok {
		st = st.Background(bg)
	}
	return st
}

// Paint renders text in the given surface style. Default-styled text is
// returned as is.
func (t *Theme) Paint(s screen.Style, text string) string {
	if s == screen.Normal {
		return text
	}
	return t.Style(s).Render(text)
}
