package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWriter_RespectsLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	logger := InitWriter(&buf, slog.LevelWarn)

	logger.Info("hidden")
	slog.Warn("shown", "active", "item-a")

	assert.Same(t, Logger, logger)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown active=item-a")
}

func TestInit_WritesUnderHome(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, Init(slog.LevelDebug))
	assert.NotNil(t, Logger)
}

func TestNew_LeavesDefaultAlone(t *testing.T) {
	prev := slog.Default()

	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	logger.Debug("gesture started", "active", "item-a")

	assert.Same(t, prev, slog.Default())
	assert.Contains(t, buf.String(), "msg=\"gesture started\" active=item-a")
}
