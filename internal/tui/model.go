package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/config"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Model represents the application state for the TUI.
// The board itself lives in the service; the model only holds view state.
type Model struct {
	Service boardservice.Service
	Config  *config.Config

	UiState           *state.UIState
	DragState         *state.DragState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	keys keyMap
	help help.Model
}

// InitialModel creates the TUI model over a board service
func InitialModel(svc boardservice.Service, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Service:           svc,
		Config:            cfg,
		UiState:           state.NewUIState(),
		DragState:         state.NewDragState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// itemCounts returns the number of items in each group, for cursor clamping
func (m Model) itemCounts() []int {
	groups := m.Service.Board().Groups
	counts := make([]int, len(groups))
	for i, g := range groups {
		counts[i] = len(g.Items)
	}
	return counts
}
