package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// CardState is how an item card is highlighted
type CardState int

const (
	CardIdle     CardState = iota
	CardSelected           // under the cursor
	CardTarget             // under the drag pointer
	CardDragging           // the item being dragged
)

// RenderCard renders a single item as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Item Title}                 ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(item models.Item, cardState CardState) string {
	style := CardStyle
	switch cardState {
	case CardSelected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			BorderBackground(lipgloss.Color(theme.SelectedBg)).
			Background(lipgloss.Color(theme.SelectedBg))
	case CardTarget:
		style = style.
			BorderForeground(lipgloss.Color(theme.Drag)).
			BorderStyle(lipgloss.DoubleBorder())
	case CardDragging:
		style = style.
			BorderForeground(lipgloss.Color(theme.Drag)).
			Foreground(lipgloss.Color(theme.Drag)).
			Bold(true)
	}

	return style.Render(" " + truncate(item.Title, cardTitleMaxLength))
}
