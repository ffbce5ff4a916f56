package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationState_Layers(t *testing.T) {
	s := NewNotificationState()
	render := func(n Notification) string { return n.Message }

	s.Add(LevelInfo, "one")
	s.Add(LevelError, "two")
	assert.Empty(t, s.GetLayers(render), "no layers before the window size is known")

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 2)

	s.Clear()
	assert.False(t, s.HasAny())
	assert.Empty(t, s.GetLayers(render))
}

func TestNotificationState_StopsAtScreenBottom(t *testing.T) {
	s := NewNotificationState()
	s.SetWindowSize(80, 4)
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")
	s.Add(LevelInfo, "three")

	// rows 0 and 2 fit, row 4 does not
	layers := s.GetLayers(func(n Notification) string { return n.Message })
	assert.Len(t, layers, 2)
}

func TestNotificationState_DropsRepeatsAndOldest(t *testing.T) {
	s := NewNotificationState()

	s.Add(LevelInfo, "Already at the last item")
	s.Add(LevelInfo, "Already at the last item")
	assert.Len(t, s.All(), 1)

	s.Add(LevelInfo, "a")
	s.Add(LevelInfo, "b")
	s.Add(LevelError, "c")
	msgs := make([]string, 0, len(s.All()))
	for _, n := range s.All() {
		msgs = append(msgs, n.Message)
	}
	assert.Equal(t, []string{"a", "b", "c"}, msgs)
}
