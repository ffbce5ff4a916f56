package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/models"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// SetupTestModel creates a sized test model over a fresh board service
func SetupTestModel(t *testing.T, b models.Board) Model {
	t.Helper()

	svc, err := boardservice.NewService(b)
	if err != nil {
		t.Fatalf("Failed to create board service: %v", err)
	}

	m := InitialModel(svc, config.Default())
	return UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 160, Height: 40})
}

// TestBoard returns To Do [A, B], Done [C] and an empty Later group
func TestBoard() models.Board {
	return models.Board{Groups: []models.Group{
		{ID: types.GroupID("todo"), Title: "To Do", Items: []models.Item{
			{ID: types.ItemID("a"), Title: "A"},
			{ID: types.ItemID("b"), Title: "B"},
		}},
		{ID: types.GroupID("done"), Title: "Done", Items: []models.Item{
			{ID: types.ItemID("c"), Title: "C"},
		}},
		{ID: types.GroupID("later"), Title: "Later", Items: []models.Item{}},
	}}
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// SendKeysToModel sends key presses to a model sequentially.
// Keys are written the way KeyPressMsg.String() reports them.
func SendKeysToModel(m Model, keys ...string) Model {
	for _, k := range keys {
		m = UpdateModelWithMessage(m, KeyPress(k))
	}
	return m
}

// KeyPress builds the KeyPressMsg for a key name such as "j", "space" or "esc"
func KeyPress(k string) tea.KeyPressMsg {
	switch k {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}
