package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/logging"
	"github.com/thenoetrevino/dragboard/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	// Log to file: the terminal belongs to the TUI
	if err := logging.Init(level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to initialize board: %w", err)
	}

	tuiApp := core.New(application.BoardService, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		// Run returns once the program sees the cancelled context
		<-errChan
	}

	board := application.BoardService.Board()
	slog.Info("session finished", "groups", len(board.Groups), "items", board.ItemCount())
	return nil
}
