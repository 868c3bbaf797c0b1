// Package tui provides shared lipgloss styles for the qmdscan
// interactive explore mode.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/qmdscan/internal/theme"
)

// TitleStyle returns the style for command titles.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().Title).
		MarginBottom(1)
}

// HelpStyle returns the style for key help text.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Muted).
		MarginTop(1)
}

// TokenNameStyle returns the style for external token names.
func TokenNameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().TokenName)
}

// TextTokenStyle returns the style for plain text runs.
func TextTokenStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text)
}

// OffsetStyle returns the style for byte offsets.
func OffsetStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Offset)
}

// SelectedStyle returns the style for the selected token row.
func SelectedStyle() lipgloss.Style {
	th := theme.Current()

	return lipgloss.NewStyle().
		Foreground(th.Selected).
		Background(th.Highlight).
		Bold(true)
}

// BorderStyle returns the style for separators.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Border)
}

// ErrorStyle returns the style for ERROR tokens and failures.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().Error)
}
