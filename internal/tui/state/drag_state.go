package state

import (
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// DragState tracks a keyboard drag in progress.
// The pointer is a (group, row) cell on the board; row HeaderRow is the group
// header and row len(items) is the empty slot below the last item.
type DragState struct {
	active   types.ID
	snapshot models.Board
	group    int
	row      int
	dragging bool
}

// NewDragState creates an idle DragState.
func NewDragState() *DragState {
	return &DragState{row: HeaderRow}
}

// Begin records the picked-up entity, the board to restore on cancel and
// the starting pointer cell.
func (s *DragState) Begin(active types.ID, snapshot models.Board, group, row int) {
	s.active = active
	s.snapshot = snapshot
	s.group = group
	s.row = row
	s.dragging = true
}

// Finish clears the drag and returns the snapshot taken at Begin.
func (s *DragState) Finish() models.Board {
	snapshot := s.snapshot
	*s = DragState{row: HeaderRow}
	return snapshot
}

// Dragging reports whether a drag is in progress.
func (s *DragState) Dragging() bool {
	return s.dragging
}

// Active returns the entity being dragged.
func (s *DragState) Active() types.ID {
	return s.active
}

// Pointer returns the pointer cell.
func (s *DragState) Pointer() (group, row int) {
	return s.group, s.row
}

// SetPointer moves the pointer to a cell.
func (s *DragState) SetPointer(group, row int) {
	s.group = group
	s.row = row
}
