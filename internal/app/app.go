package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/models"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
)

// App holds the application services and provides dependency injection.
type App struct {
	Config *config.Config

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New creates a new App with all services initialized.
// The board starts from the initial board option if given, otherwise it is
// seeded according to cfg.Board.Seed.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	initial := models.Board{}
	if o.initial != nil {
		initial = *o.initial
	}

	svc, err := boardservice.NewService(initial,
		boardservice.WithLogger(o.logger),
		boardservice.WithObserver(o.observer),
	)
	if err != nil {
		return nil, err
	}

	if o.initial == nil && cfg.Board.Seed == config.SeedDemo {
		if err := boardservice.SeedDemo(svc); err != nil {
			return nil, fmt.Errorf("seed demo board: %w", err)
		}
	}

	o.logger.Info("board ready",
		"seed", cfg.Board.Seed,
		"groups", len(svc.Board().Groups),
		"items", svc.Board().ItemCount())

	return &App{
		Config:       cfg,
		BoardService: svc,
	}, nil
}
