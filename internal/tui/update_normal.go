package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/huhforms"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.AddGroup):
		return m.handleAddGroup()
	case key.Matches(msg, m.keys.AddItem):
		return m.handleAddItem()
	case key.Matches(msg, m.keys.PickUp):
		return m.handlePickUp()
	case key.Matches(msg, m.keys.Left):
		return m.handleNavigateLeft()
	case key.Matches(msg, m.keys.Right):
		return m.handleNavigateRight()
	case key.Matches(msg, m.keys.Up):
		return m.handleNavigateUp()
	case key.Matches(msg, m.keys.Down):
		return m.handleNavigateDown()
	}

	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedGroup() > 0 {
		m.UiState.SetSelectedGroup(m.UiState.SelectedGroup() - 1)
		m.UiState.Clamp(m.itemCounts())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first group")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedGroup() < len(m.Service.Board().Groups)-1 {
		m.UiState.SetSelectedGroup(m.UiState.SelectedGroup() + 1)
		m.UiState.Clamp(m.itemCounts())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last group")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if !m.UiState.OnHeader() {
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() - 1)
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	counts := m.itemCounts()
	if len(counts) == 0 {
		return m, nil
	}
	if m.UiState.SelectedItem() < counts[m.UiState.SelectedGroup()]-1 {
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() + 1)
	} else if counts[m.UiState.SelectedGroup()] > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last item")
	}
	return m, nil
}

func (m Model) handleAddGroup() (tea.Model, tea.Cmd) {
	m.FormState.Reset()
	m.FormState.GroupForm = huhforms.CreateGroupForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormConfirm,
	).
		WithTheme(huhforms.CreateBoardTheme(m.Config.ColorScheme)).
		WithKeyMap(huhforms.FormKeyMap(m.Config.KeyMappings.CancelDrag))

	m.UiState.SetMode(state.GroupFormMode)
	return m, m.FormState.GroupForm.Init()
}

func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	groups := m.Service.Board().Groups
	if len(groups) == 0 {
		m.NotificationState.Add(state.LevelError, "Cannot add item: no groups exist. Create a group first with '"+m.Config.KeyMappings.AddGroup+"'")
		return m, nil
	}

	group := groups[m.UiState.SelectedGroup()]
	m.FormState.Reset()
	m.FormState.TargetGroup = group.ID
	m.FormState.ItemForm = huhforms.CreateItemForm(&m.FormState.FormTitle, group.Title).
		WithTheme(huhforms.CreateBoardTheme(m.Config.ColorScheme)).
		WithKeyMap(huhforms.FormKeyMap(m.Config.KeyMappings.CancelDrag))

	m.UiState.SetMode(state.ItemFormMode)
	return m, m.FormState.ItemForm.Init()
}
