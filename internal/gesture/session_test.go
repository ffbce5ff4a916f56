package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/dragboard/internal/types"
)

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Idle, s.State())
	_, ok := s.Active()
	assert.False(t, ok)

	s.Start(types.ItemID("a"))
	assert.Equal(t, Dragging, s.State())
	active, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, types.ItemID("a"), active)

	s.End()
	assert.Equal(t, Idle, s.State())
	_, ok = s.Active()
	assert.False(t, ok)
}

func TestSession_EndWhenIdleIsHarmless(t *testing.T) {
	s := NewSession()
	s.End()
	assert.Equal(t, Idle, s.State())
}

func TestSession_TrackRepeats(t *testing.T) {
	s := NewSession()
	a, b, c := types.ItemID("a"), types.ItemID("b"), types.ItemID("c")

	s.Start(a)
	assert.False(t, s.Track(a, b), "first target of a drag is new")
	assert.True(t, s.Track(a, b), "same target as the previous event")

	assert.False(t, s.Track(a, a), "self target is still recorded")
	assert.False(t, s.Track(a, b), "hovering back over a neighbour is a new move")

	assert.False(t, s.Track(a, c))
	assert.False(t, s.Track(a, types.ID{}), "pointer over nothing")
	assert.False(t, s.Track(a, c), "leaving and re-entering a target is a new move")

	s.Start(a)
	assert.False(t, s.Track(a, c), "a new drag starts with a clean slate")
}

func TestSession_TrackIgnoresOtherEntity(t *testing.T) {
	s := NewSession()
	s.Start(types.ItemID("a"))

	assert.False(t, s.Track(types.ItemID("b"), types.ItemID("c")))
	assert.False(t, s.Track(types.ItemID("b"), types.ItemID("c")))

	active, _ := s.Active()
	assert.Equal(t, types.ItemID("a"), active)
}

func TestSession_TrackWhenIdle(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Track(types.ItemID("a"), types.ItemID("b")))
	assert.False(t, s.Track(types.ItemID("a"), types.ItemID("b")))
}

func TestEvent(t *testing.T) {
	ev := Event{Phase: PhaseEnd, Active: "item-a"}
	assert.False(t, ev.HasTarget())
	assert.Equal(t, "end item-a", ev.String())
	assert.NoError(t, ev.Validate())

	ev = Event{Phase: PhaseMove, Active: "item-a", Target: "group-g"}
	assert.True(t, ev.HasTarget())
	assert.Equal(t, "move item-a -> group-g", ev.String())

	assert.ErrorIs(t, Event{Phase: "hover"}.Validate(), ErrUnknownPhase)
}
