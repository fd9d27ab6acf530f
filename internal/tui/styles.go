// Package tui implements the interactive demo: a bubbletea program that
// renders the sheet stack with lipgloss and drives the store and gesture
// recognizer from keyboard and mouse input.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and styles for the demo.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Badge     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	SheetBox  lipgloss.Style
	SheetDim  lipgloss.Style
	HandleBar lipgloss.Style
	Backdrop  lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0a0b"),
		Surface:    lipgloss.Color("#1a1a1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#909090"),
		Accent:     lipgloss.Color("#4ade80"),
		Border:     lipgloss.Color("#333333"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.SheetBox = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 2)

	t.SheetDim = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	t.HandleBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Backdrop = lipgloss.NewStyle().
		Foreground(t.Border)
}
