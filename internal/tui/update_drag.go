package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	boardops "github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/types"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// handlePickUp starts a drag for the card, or the group header, under the cursor
func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	board := m.Service.Board()
	if len(board.Groups) == 0 {
		m.NotificationState.Add(state.LevelError, "Nothing to pick up: the board is empty")
		return m, nil
	}

	m.UiState.Clamp(m.itemCounts())
	g, row := m.UiState.SelectedGroup(), m.UiState.SelectedItem()
	group := board.Groups[g]
	active := group.ID
	if row >= 0 && row < len(group.Items) {
		active = group.Items[row].ID
	}

	m.Service.StartGesture(active)
	m.DragState.Begin(active, board, g, row)
	m.UiState.SetMode(state.DragMode)
	return m, nil
}

func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Drop):
		return m.handleDrop()
	case key.Matches(msg, m.keys.Cancel):
		return m.handleCancelDrag()
	case key.Matches(msg, m.keys.Left):
		return m.movePointer(-1, 0)
	case key.Matches(msg, m.keys.Right):
		return m.movePointer(1, 0)
	case key.Matches(msg, m.keys.Up):
		return m.movePointer(0, -1)
	case key.Matches(msg, m.keys.Down):
		return m.movePointer(0, 1)
	}
	return m, nil
}

// movePointer shifts the drag pointer and previews the move for the new cell
func (m Model) movePointer(dGroup, dRow int) (tea.Model, tea.Cmd) {
	if m.DragState.Active().IsGroup() && dRow != 0 {
		return m, nil
	}

	g, row := m.DragState.Pointer()
	ng, nrow := m.clampPointer(g+dGroup, row+dRow)
	if ng == g && nrow == row {
		return m, nil
	}
	m.DragState.SetPointer(ng, nrow)

	active := m.DragState.Active()
	target := m.hitTest()
	out := m.Service.MoveGesture(active, target)

	// The preview may have changed group sizes under the pointer
	m.DragState.SetPointer(m.clampPointer(m.DragState.Pointer()))

	// and moved another entity, usually the dragged one, into the pointer's cell
	if out.Changed() {
		if now := m.hitTest(); now != nil && (target == nil || *now != *target) {
			m.Service.MoveGesture(active, now)
		}
	}
	m.UiState.EnsureSelectionVisible(ng)
	return m, nil
}

// clampPointer keeps the pointer on the board. Group drags only use header rows;
// item drags may also sit on the empty slot after the last item.
func (m Model) clampPointer(g, row int) (int, int) {
	groups := m.Service.Board().Groups
	if len(groups) == 0 {
		return 0, state.HeaderRow
	}
	g = min(max(g, 0), len(groups)-1)
	if m.DragState.Active().IsGroup() {
		return g, state.HeaderRow
	}
	return g, min(max(row, state.HeaderRow), len(groups[g].Items))
}

// hitTest returns the drop target under the pointer: the item in the cell,
// otherwise the surface of the pointer's group. Group drags always target groups.
func (m Model) hitTest() *types.ID {
	groups := m.Service.Board().Groups
	g, row := m.DragState.Pointer()
	if g < 0 || g >= len(groups) {
		return nil
	}

	group := groups[g]
	if !m.DragState.Active().IsGroup() && row >= 0 && row < len(group.Items) {
		id := group.Items[row].ID
		return &id
	}
	id := group.ID
	return &id
}

func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	active := m.DragState.Active()
	out := m.Service.EndGesture(active, m.hitTest())
	snapshot := m.DragState.Finish()
	m.UiState.SetMode(state.NormalMode)

	if !m.Service.Board().Equal(snapshot) {
		m.NotificationState.Add(state.LevelInfo, "Moved "+m.entityTitle(active))
	}
	slog.Debug("drop", "active", active.String(), "transition", out.Transition.String())

	m.selectEntity(active)
	return m, nil
}

func (m Model) handleCancelDrag() (tea.Model, tea.Cmd) {
	active := m.DragState.Active()
	m.Service.EndGesture(active, nil)
	snapshot := m.DragState.Finish()
	m.UiState.SetMode(state.NormalMode)

	if err := m.Service.Restore(snapshot); err != nil {
		slog.Error("Error restoring board after cancelled drag", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not restore the board")
		return m, nil
	}

	m.NotificationState.Add(state.LevelInfo, "Drag cancelled")
	m.selectEntity(active)
	return m, nil
}

// selectEntity moves the cursor onto an item or group header
func (m Model) selectEntity(id types.ID) {
	board := m.Service.Board()
	g, ok := boardops.Locate(board, id)
	if !ok {
		m.UiState.Clamp(m.itemCounts())
		return
	}

	m.UiState.SetSelectedGroup(g)
	if id.IsItem() {
		m.UiState.SetSelectedItem(boardops.ItemIndex(board.Groups[g], id))
	} else {
		m.UiState.SetSelectedItem(state.HeaderRow)
	}
	m.UiState.EnsureSelectionVisible(g)
}

// entityTitle returns the display title of an item or group
func (m Model) entityTitle(id types.ID) string {
	if id.IsGroup() {
		group, _ := m.Service.Group(id)
		return group.Title
	}
	return m.Service.ItemTitle(id)
}
