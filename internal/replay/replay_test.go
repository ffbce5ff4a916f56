package replay

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dragboard/internal/gesture"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/testutil"
	"github.com/thenoetrevino/dragboard/internal/types"
)

func TestLoad_CrossGroupScenario(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "cross_group.yaml"))
	require.NoError(t, err)

	require.Len(t, s.Board.Groups, 2)
	assert.Equal(t, types.GroupID("todo"), s.Board.Groups[0].ID)
	require.Len(t, s.Events, 4)
	assert.Equal(t, gesture.PhaseStart, s.Events[0].Phase)
	assert.Equal(t, "card-7", s.Events[2].Target)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("board: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("board:\n  groups: []\n"))
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = Parse([]byte("board:\n  groups:\n    - id: card-1\n      title: X\nevents:\n  - phase: start\n    active: item-a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card-1")
}

func TestRun_CrossGroupScenario(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "cross_group.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := Run(s, boardservice.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, testutil.ItemValues(res.Board.Groups[0]))
	assert.Equal(t, []string{"a", "c"}, testutil.ItemValues(res.Board.Groups[1]))

	require.Len(t, res.Steps, 4)
	assert.Equal(t, "none", res.Steps[0].Transition)
	assert.Empty(t, res.Steps[0].Skipped)
	assert.Equal(t, "transfer_item", res.Steps[1].Transition)
	assert.Empty(t, res.Steps[1].Skipped)
	assert.Contains(t, res.Steps[2].Skipped, "card-7")
	assert.Equal(t, boardservice.ErrAlreadyApplied.Error(), res.Steps[3].Skipped)

	assert.Contains(t, buf.String(), "malformed target id")
}

func TestRun_GroupReorder(t *testing.T) {
	s, err := Parse([]byte(`
board:
  groups:
    - {id: group-g1, title: One, items: []}
    - {id: group-g2, title: Two, items: []}
    - {id: container-g3, title: Three, items: []}
events:
  - {phase: start, active: group-g1}
  - {phase: move, active: group-g1, target: group-g3}
  - {phase: end, active: group-g1}
`))
	require.NoError(t, err)

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, []string{"g2", "g3", "g1"}, testutil.GroupValues(res.Board))
	assert.Equal(t, "reorder_group", res.Steps[1].Transition)
	assert.Equal(t, boardservice.ErrNoTarget.Error(), res.Steps[2].Skipped)
}

func TestRun_InvalidBoard(t *testing.T) {
	s := &Scenario{
		Board:  testutil.Board(testutil.G("g"), testutil.G("g")),
		Events: []gesture.Event{{Phase: gesture.PhaseStart, Active: "group-g"}},
	}

	_, err := Run(s)
	assert.ErrorIs(t, err, boardservice.ErrInvalidBoard)
}

func TestRun_ScenarioWithoutStart(t *testing.T) {
	s, err := Parse([]byte(`
board:
  groups:
    - {id: group-todo, title: To Do, items: [{id: item-a, title: A}, {id: item-b, title: B}]}
    - {id: group-done, title: Done, items: [{id: item-c, title: C}]}
events:
  - {phase: move, active: item-a, target: item-c}
  - {phase: end, active: item-a, target: item-c}
`))
	require.NoError(t, err)

	res, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, testutil.ItemValues(res.Board.Groups[0]))
	assert.Equal(t, []string{"a", "c"}, testutil.ItemValues(res.Board.Groups[1]))
	assert.Equal(t, boardservice.ErrAlreadyApplied.Error(), res.Steps[1].Skipped)
}
