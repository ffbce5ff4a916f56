package board

import (
	"log/slog"

	boardops "github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/gesture"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// PhaseCreate marks a Change produced by a creation action rather than a drag
const PhaseCreate gesture.Phase = "create"

// Change describes one mutation of the board.
// For creations, Active is the new item (zero for groups) and Target the group.
type Change struct {
	Phase      gesture.Phase
	Active     types.ID
	Target     types.ID
	Transition boardops.Transition
}

// Observer is called synchronously after every change to the board
type Observer func(Change)

// Option is a functional option for configuring the service
type Option func(*serviceConfig)

// serviceConfig holds the configuration for service initialization
type serviceConfig struct {
	logger   *slog.Logger
	observer Observer
}

// WithLogger sets the logger used for gesture diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithObserver registers a callback for board changes
func WithObserver(fn Observer) Option {
	return func(cfg *serviceConfig) {
		cfg.observer = fn
	}
}
