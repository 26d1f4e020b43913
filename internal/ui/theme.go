// Package ui renders the list for the terminal.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the styles used when rendering the list. "auto" follows the
// terminal background via adaptive colors; "dark" and "light" pin one palette.
type Theme struct {
	Header  lipgloss.Style
	Border  lipgloss.Style
	Done    lipgloss.Style
	Pending lipgloss.Style
	Count   lipgloss.Style
}

var themeNames = []string{"auto", "dark", "light"}

func ValidateTheme(name string) error {
	if name == "" {
		return nil
	}
	for _, n := range themeNames {
		if name == n {
			return nil
		}
	}
	return fmt.Errorf("invalid theme %q: must be one of auto, dark, light", name)
}

// Resolve maps a configured theme name to its styles, defaulting to auto.
func Resolve(name string) Theme {
	switch name {
	case "dark":
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		}
	case "light":
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
			Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	default:
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
			Border:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "7", Dark: "8"}),
			Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Pending: lipgloss.NewStyle(),
			Count:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		}
	}
}
