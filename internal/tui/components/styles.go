// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns (one per group)
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of items as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (group names)
	TitleStyle lipgloss.Style

	// CreateFormBoxStyle defines the base style for creation forms (green border)
	CreateFormBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// SubtleStyle is used for placeholders and counts
	SubtleStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// DragBarStyle is the status bar while something is being dragged
	DragBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.GroupBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnContentWidth + 4)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.ItemBorder)).
		BorderBackground(lipgloss.Color(scheme.ItemBackground)).
		Background(lipgloss.Color(scheme.ItemBackground)).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Foreground(lipgloss.Color(scheme.StatusBarText))

	DragBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.Drag)).
		Foreground(lipgloss.Color(scheme.GroupBackground)).
		Bold(true)
}
