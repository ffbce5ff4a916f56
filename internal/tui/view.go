package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/layers"
	"github.com/thenoetrevino/dragboard/internal/tui/notifications"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modal string
	switch m.UiState.Mode() {
	case state.GroupFormMode:
		if m.FormState.GroupForm != nil {
			modal = components.CreateFormBoxStyle.Render(m.FormState.GroupForm.View())
		}
	case state.ItemFormMode:
		if m.FormState.ItemForm != nil {
			modal = components.CreateFormBoxStyle.Render(m.FormState.ItemForm.View())
		}
	case state.HelpMode:
		h := m.help
		h.ShowAll = true
		modal = components.HelpBoxStyle.Render(
			components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + h.View(m.keys))
	}
	if layer := layers.CreateCenteredLayer(modal, m.UiState.Width(), m.UiState.Height()); layer != nil {
		stack = append(stack, layer)
	}

	stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	if layer := layers.CreateBottomLayer(m.viewStatusBar(), m.UiState.Height()); layer != nil {
		stack = append(stack, layer)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewBoard renders the visible group columns side by side
func (m Model) viewBoard() string {
	board := m.Service.Board()
	if len(board.Groups) == 0 {
		return components.SubtleStyle.Padding(1, 2).Render(
			fmt.Sprintf("No groups yet. Press '%s' to create one.", m.Config.KeyMappings.AddGroup))
	}

	dragging := m.DragState.Dragging()
	active, _ := m.Service.ActiveID()
	pointerGroup, pointerRow := m.DragState.Pointer()

	start := min(m.UiState.ViewportOffset(), len(board.Groups)-1)
	end := min(start+m.UiState.ViewportSize(), len(board.Groups))

	columns := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		props := components.ColumnProps{
			Group:  board.Groups[i],
			Row:    components.NoRow,
			Active: active,
		}
		switch {
		case dragging && i == pointerGroup:
			props.Row = pointerRow
			props.Dragging = true
		case !dragging && i == m.UiState.SelectedGroup():
			props.Row = m.UiState.SelectedItem()
		}
		columns = append(columns, components.RenderColumn(props), " ")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// viewStatusBar renders the bottom bar. While dragging it becomes the drag
// overlay and names the entity that follows the pointer.
func (m Model) viewStatusBar() string {
	if active, ok := m.Service.ActiveID(); ok {
		left := "⠿ Dragging " + m.entityTitle(active)
		if target := m.hitTest(); target != nil && *target != active {
			left += " → " + m.entityTitle(*target)
		}
		return components.RenderStatusBar(components.StatusBarProps{
			Width:    m.UiState.Width(),
			Left:     left,
			Right:    fmt.Sprintf("%s drop · %s cancel", m.Config.KeyMappings.Drop, m.Config.KeyMappings.CancelDrag),
			Dragging: true,
		})
	}

	board := m.Service.Board()
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  fmt.Sprintf("dragboard · %d groups · %d items", len(board.Groups), board.ItemCount()),
		Right: m.help.View(m.keys),
	})
}
