// Package ui is the bubbletea front end for the marquee demo: it hosts the
// engine's frame loop, translates terminal events into the engine's
// collaborator contracts, and paints the band.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette for the demo band.
var (
	ChipBackground = lipgloss.Color("#8BC34A")
	ChipForeground = lipgloss.Color("#101F38")
	BandBorder     = lipgloss.Color("#2a3850")
	StatusMuted    = lipgloss.Color("#6c7a92")
	TitleColor     = lipgloss.Color("#f2f2f2")
)

// Styles holds the pre-compiled styles used by the model.
type Styles struct {
	Chip   lipgloss.Style
	Band   lipgloss.Style
	Title  lipgloss.Style
	Status lipgloss.Style
}

// DefaultStyles returns the demo styling.
func DefaultStyles() Styles {
	return Styles{
		Chip: lipgloss.NewStyle().
			Foreground(ChipForeground).
			Background(ChipBackground).
			Bold(true),
		Band: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BandBorder),
		Title: lipgloss.NewStyle().
			Foreground(TitleColor).
			Bold(true).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(StatusMuted).
			Padding(0, 1),
	}
}
