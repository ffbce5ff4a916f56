package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
		m.NotificationState.SetWindowSize(size.Width, size.Height)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedGroup())
	}

	// Forms need ALL messages
	switch m.UiState.Mode() {
	case state.GroupFormMode:
		return m.updateGroupForm(msg)
	case state.ItemFormMode:
		return m.updateItemForm(msg)
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// handleKey dispatches key presses to the appropriate mode handler
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}
