// Package menu runs the numbered text menu that views and edits the game
// list. It reads answers line by line and renders with lipgloss.
package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/gamelist/internal/config"
)

// Color palette.
var (
	colorGray   = lipgloss.Color("#888888")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
)

// Theme holds the styles used by the controller.
type Theme struct {
	header   lipgloss.Style // menu title and list header
	rule     lipgloss.Style
	owned    lipgloss.Style
	wishlist lipgloss.Style
	errorMsg lipgloss.Style
	success  lipgloss.Style
}

// NewTheme builds a Theme for out from the display config. Color detection is
// done against out, so writing to a non-terminal produces plain text.
func NewTheme(out io.Writer, display config.DisplayConfig) Theme {
	if !display.Color {
		plain := lipgloss.NewStyle()
		return Theme{
			header:   plain,
			rule:     plain,
			owned:    plain,
			wishlist: plain,
			errorMsg: plain,
			success:  plain,
		}
	}

	accent := config.DefaultAccentColor
	if display.AccentColor != "" {
		accent = display.AccentColor
	}

	r := lipgloss.NewRenderer(out)
	return Theme{
		header: r.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
		rule: r.NewStyle().
			Foreground(colorGray),
		owned: r.NewStyle().
			Foreground(colorGreen),
		wishlist: r.NewStyle().
			Foreground(colorYellow),
		errorMsg: r.NewStyle().
			Foreground(colorRed).
			Bold(true),
		success: r.NewStyle().
			Foreground(colorGreen),
	}
}

// statusStyle returns the style for an ownership label.
func (t Theme) statusStyle(owned bool) lipgloss.Style {
	if owned {
		return t.owned
	}
	return t.wishlist
}
