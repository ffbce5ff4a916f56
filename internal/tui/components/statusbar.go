package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string

	// Dragging switches to the drag overlay colors
	Dragging bool
}

// RenderStatusBar renders a full-width status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := StatusBarStyle
	if props.Dragging {
		style = DragBarStyle
	}

	left := " " + props.Left
	right := props.Right + " "
	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return style.Render(left + strings.Repeat(" ", gapWidth) + right)
}
