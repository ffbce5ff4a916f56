package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

func TestDragState_BeginFinish(t *testing.T) {
	s := NewDragState()
	assert.False(t, s.Dragging())

	snapshot := models.Board{Groups: []models.Group{{ID: types.GroupID("g"), Title: "G"}}}
	s.Begin(types.ItemID("a"), snapshot, 1, 2)

	assert.True(t, s.Dragging())
	assert.Equal(t, types.ItemID("a"), s.Active())
	group, row := s.Pointer()
	assert.Equal(t, 1, group)
	assert.Equal(t, 2, row)

	s.SetPointer(0, HeaderRow)
	group, row = s.Pointer()
	assert.Equal(t, 0, group)
	assert.Equal(t, HeaderRow, row)

	got := s.Finish()
	assert.True(t, got.Equal(snapshot))
	assert.False(t, s.Dragging())
	assert.True(t, s.Active().IsZero())
}
