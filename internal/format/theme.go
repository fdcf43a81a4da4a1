package format

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the emphasis styles used by the built-in parsers. A Theme is
// built once at startup and passed by reference; parsers never construct
// styles themselves.
type Theme struct {
	// Character and token emphasis for the ad-hoc highlighter.
	Quote   lipgloss.Style
	Bracket lipgloss.Style
	Number  lipgloss.Style
	IPAddr  lipgloss.Style
	Verb    lipgloss.Style

	// Field emphasis for structured access-log records.
	Client         lipgloss.Style
	UserIdentifier lipgloss.Style
	UserID         lipgloss.Style
	Datetime       lipgloss.Style
	Method         lipgloss.Style
	Request        lipgloss.Style
	Protocol       lipgloss.Style
	Status         lipgloss.Style
	Size           lipgloss.Style
}

// DefaultTheme returns the standard ANSI palette.
func DefaultTheme() Theme {
	return Theme{
		Quote:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // bright cyan
		Bracket: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),  // blue
		IPAddr:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Background(lipgloss.Color("7")),
		Verb:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		Client:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // bright red
		UserIdentifier: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		UserID:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Datetime:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // bright magenta
		Method:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Request:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Protocol:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
		Size:           lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// PlainTheme returns a theme with no emphasis at all. Used when color output
// is disabled.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Quote:   plain,
		Bracket: plain,
		Number:  plain,
		IPAddr:  plain,
		Verb:    plain,

		Client:         plain,
		UserIdentifier: plain,
		UserID:         plain,
		Datetime:       plain,
		Method:         plain,
		Request:        plain,
		Protocol:       plain,
		Status:         plain,
		Size:           plain,
	}
}
