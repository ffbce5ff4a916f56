package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// ColumnProps describes one group column
type ColumnProps struct {
	Group models.Group

	// Row is the row under the cursor (or the drag pointer), state.HeaderRow
	// for the header, len(items) for the empty drop slot, NoRow elsewhere
	Row int

	// Dragging is true while Row is the drag pointer rather than the cursor
	Dragging bool

	// Active is the entity being dragged, zero when idle
	Active types.ID
}

// RenderColumn renders a complete group column with its title, description and items
//
// Layout:
//
//	{Group Title} ({count})
//	{description}
//	{Item 1}
//	{Item 2}
//	...
func RenderColumn(props ColumnProps) string {
	group := props.Group
	groupActive := props.Active == group.ID

	header := fmt.Sprintf("%s (%d)", truncate(group.Title, ColumnContentWidth-6), len(group.Items))
	headerStyle := TitleStyle
	switch {
	case groupActive:
		headerStyle = headerStyle.Foreground(lipgloss.Color(theme.Drag))
	case props.Row == state.HeaderRow:
		headerStyle = headerStyle.Background(lipgloss.Color(theme.SelectedBg))
	}
	marker := "  "
	if props.Row == state.HeaderRow {
		marker = "▸ "
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(marker + header))
	b.WriteString("\n")

	if group.Description != "" {
		b.WriteString(RenderDescription(DescriptionProps{
			Description: group.Description,
			Width:       ColumnContentWidth,
		}))
		b.WriteString("\n")
	}

	if len(group.Items) == 0 && !(props.Dragging && props.Row == 0) {
		b.WriteString(SubtleStyle.Padding(1, 0).Render("No items"))
	}

	for i, item := range group.Items {
		b.WriteString("\n")
		b.WriteString(RenderCard(item, cardState(props, i, item)))
	}

	// Drop slot below the last item
	if props.Dragging && props.Row == len(group.Items) && !props.Active.IsGroup() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Drag)).
			Width(CardWidth).
			Align(lipgloss.Center).
			Render("┄ drop here ┄"))
	}

	style := ColumnStyle
	switch {
	case groupActive:
		style = style.BorderForeground(lipgloss.Color(theme.Drag))
	case props.Row != NoRow:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(b.String())
}

func cardState(props ColumnProps, row int, item models.Item) CardState {
	switch {
	case item.ID == props.Active:
		return CardDragging
	case props.Row != row:
		return CardIdle
	case props.Dragging:
		return CardTarget
	default:
		return CardSelected
	}
}
