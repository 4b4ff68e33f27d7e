package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)

// styles holds the styles for one rendering mode.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// stylesFor returns colored styles for ModeStyled and unstyled ones otherwise.
func stylesFor(mode Mode) styles {
	if mode != ModeStyled {
		plain := lipgloss.NewStyle()
		return styles{title: plain, success: plain, warning: plain, err: plain, muted: plain}
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		success: lipgloss.NewStyle().Foreground(ColorSuccess),
		warning: lipgloss.NewStyle().Foreground(ColorWarning),
		err:     lipgloss.NewStyle().Foreground(ColorError),
		muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
