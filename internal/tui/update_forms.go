package tui

import (
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

func (m Model) updateGroupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.GroupForm == nil || m.isCancel(msg) {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.FormState.GroupForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.GroupForm = f
	}

	switch m.FormState.GroupForm.State {
	case huh.StateCompleted:
		m.submitGroupForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.ItemForm == nil || m.isCancel(msg) {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.FormState.ItemForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.ItemForm = f
	}

	switch m.FormState.ItemForm.State {
	case huh.StateCompleted:
		m.submitItemForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submitGroupForm creates the group described by the form values
func (m Model) submitGroupForm() {
	defer m.closeForm()

	if !m.FormState.FormConfirm {
		return
	}

	group, err := m.Service.CreateGroup(boardservice.CreateGroupRequest{
		Title:       strings.TrimSpace(m.FormState.FormTitle),
		Description: strings.TrimSpace(m.FormState.FormDescription),
	})
	if err != nil {
		slog.Error("Error creating group", "error", err)
		m.NotificationState.Add(state.LevelError, "Error creating group: "+err.Error())
		return
	}

	m.NotificationState.Add(state.LevelInfo, "Created group "+group.Title)
	m.selectEntity(group.ID)
}

// submitItemForm creates the item described by the form values
func (m Model) submitItemForm() {
	defer m.closeForm()

	item, err := m.Service.CreateItem(boardservice.CreateItemRequest{
		GroupID: m.FormState.TargetGroup,
		Title:   strings.TrimSpace(m.FormState.FormTitle),
	})
	if err != nil {
		slog.Error("Error creating item", "error", err)
		m.NotificationState.Add(state.LevelError, "Error creating item: "+err.Error())
		return
	}

	m.NotificationState.Add(state.LevelInfo, "Created item "+item.Title)
	m.selectEntity(item.ID)
}

func (m Model) closeForm() {
	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) isCancel(msg tea.Msg) bool {
	press, ok := msg.(tea.KeyPressMsg)
	return ok && key.Matches(press, m.keys.Cancel)
}
