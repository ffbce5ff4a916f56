package app

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/models"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
)

type options struct {
	logger   *slog.Logger
	observer boardservice.Observer
	initial  *models.Board
}

// Option configures App construction
type Option func(*options)

// WithLogger sets the logger handed to every service
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver receives every applied board change
func WithObserver(observer boardservice.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithInitialBoard starts from b instead of the configured seed
func WithInitialBoard(b models.Board) Option {
	return func(o *options) {
		o.initial = &b
	}
}
