package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	boardops "github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/gesture"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Service owns the board and the drag session.
// It is driven from a single event loop: calls must not overlap.
type Service interface {
	// Gesture events
	StartGesture(active types.ID)
	MoveGesture(active types.ID, target *types.ID) boardops.Outcome
	EndGesture(active types.ID, target *types.ID) boardops.Outcome
	Handle(ev gesture.Event) boardops.Outcome

	// Read operations
	Board() models.Board
	ActiveID() (types.ID, bool)
	Group(id types.ID) (models.Group, bool)
	ItemTitle(id types.ID) string

	// Write operations
	CreateGroup(req CreateGroupRequest) (*models.Group, error)
	CreateItem(req CreateItemRequest) (*models.Item, error)
	Restore(b models.Board) error
}

// CreateGroupRequest encapsulates data for creating a group
type CreateGroupRequest struct {
	ID          types.ID // Optional: zero value mints a new id
	Title       string
	Description string
}

// CreateItemRequest encapsulates data for creating an item
type CreateItemRequest struct {
	GroupID types.ID
	ID      types.ID // Optional: zero value mints a new id
	Title   string
}

// service implements Service over an in-memory board
type service struct {
	board    models.Board
	session  *gesture.Session
	logger   *slog.Logger
	observer Observer
}

// NewService creates a board service starting from the given board
func NewService(initial models.Board, opts ...Option) (Service, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	cfg := &serviceConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &service{
		board:    initial,
		session:  gesture.NewSession(),
		logger:   cfg.logger,
		observer: cfg.observer,
	}, nil
}

// StartGesture records the entity being dragged
func (s *service) StartGesture(active types.ID) {
	s.session.Start(active)
	s.logger.Debug("gesture started", "active", active.String())
}

// MoveGesture previews the transition for the current pointer position
func (s *service) MoveGesture(active types.ID, target *types.ID) boardops.Outcome {
	return s.transition(gesture.PhaseMove, active, target)
}

// EndGesture commits the transition for the release position and clears the
// session, whether or not the board changed.
func (s *service) EndGesture(active types.ID, target *types.ID) boardops.Outcome {
	out := s.transition(gesture.PhaseEnd, active, target)
	s.session.End()
	s.logger.Debug("gesture ended", "active", active.String(), "transition", out.Transition.String())
	return out
}

func (s *service) transition(phase gesture.Phase, active types.ID, target *types.ID) boardops.Outcome {
	if current, ok := s.session.Active(); !ok || current != active {
		s.session.Start(active)
		s.logger.Debug("gesture started implicitly", "phase", phase, "active", active.String())
	}

	if target == nil {
		s.session.Track(active, types.ID{})
		return boardops.Outcome{Skipped: ErrNoTarget}
	}
	if s.session.Track(active, *target) {
		return boardops.Outcome{Skipped: ErrAlreadyApplied}
	}

	next, out := boardops.Apply(s.board, active, *target)
	if !out.Changed() {
		level := slog.LevelDebug
		if errors.Is(out.Skipped, types.ErrMalformedID) {
			level = slog.LevelWarn
		}
		s.logger.Log(context.Background(), level, "transition skipped",
			"phase", phase,
			"active", active.String(),
			"target", target.String(),
			"reason", out.Skipped)
		return out
	}

	s.board = next
	s.logger.Debug("transition applied",
		"phase", phase,
		"active", active.String(),
		"target", target.String(),
		"transition", out.Transition.String())
	s.notify(Change{Phase: phase, Active: active, Target: *target, Transition: out.Transition})
	return out
}

// Handle dispatches a gesture event whose identifiers are still raw strings.
// Malformed identifiers are reported on the logger and treated as no-ops.
func (s *service) Handle(ev gesture.Event) boardops.Outcome {
	if err := ev.Validate(); err != nil {
		s.logger.Warn("ignoring gesture event", "event", ev.String(), "error", err)
		return boardops.Outcome{Skipped: err}
	}

	active, err := types.ParseID(ev.Active)
	if err != nil {
		s.logger.Warn("malformed active id", "event", ev.String(), "error", err)
		if ev.Phase == gesture.PhaseEnd {
			s.session.End()
		}
		return boardops.Outcome{Skipped: err}
	}

	var target *types.ID
	if ev.HasTarget() {
		parsed, err := types.ParseID(ev.Target)
		if err != nil {
			s.logger.Warn("malformed target id", "event", ev.String(), "error", err)
			if ev.Phase == gesture.PhaseEnd {
				s.session.End()
			}
			return boardops.Outcome{Skipped: err}
		}
		target = &parsed
	}

	switch ev.Phase {
	case gesture.PhaseStart:
		s.StartGesture(active)
		return boardops.Outcome{}
	case gesture.PhaseMove:
		return s.MoveGesture(active, target)
	default:
		return s.EndGesture(active, target)
	}
}

// Board returns the current board
func (s *service) Board() models.Board {
	return s.board
}

// ActiveID returns the id being dragged, for overlay rendering
func (s *service) ActiveID() (types.ID, bool) {
	return s.session.Active()
}

// Group returns the group with the given id
func (s *service) Group(id types.ID) (models.Group, bool) {
	return boardops.FindGroup(s.board, id)
}

// ItemTitle returns the title of the item, or "" if it is not on the board
func (s *service) ItemTitle(id types.ID) string {
	item, ok := boardops.FindItem(s.board, id)
	if !ok {
		return ""
	}
	return item.Title
}

// CreateGroup appends a new empty group to the board
func (s *service) CreateGroup(req CreateGroupRequest) (*models.Group, error) {
	id := req.ID
	if id.IsZero() {
		id = types.NewGroupID()
	}

	next, err := boardops.AddGroup(s.board, id, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	s.board = next
	s.logger.Info("group created", "group", id.String())
	s.notify(Change{Phase: PhaseCreate, Target: id})

	group := next.Groups[len(next.Groups)-1]
	return &group, nil
}

// CreateItem appends a new item to the end of a group
func (s *service) CreateItem(req CreateItemRequest) (*models.Item, error) {
	id := req.ID
	if id.IsZero() {
		id = types.NewItemID()
	}

	next, err := boardops.AddItem(s.board, req.GroupID, id, req.Title)
	if err != nil {
		return nil, err
	}
	s.board = next
	s.logger.Info("item created", "item", id.String(), "group", req.GroupID.String())
	s.notify(Change{Phase: PhaseCreate, Active: id, Target: req.GroupID})

	item, _ := boardops.FindItem(next, id)
	return &item, nil
}

// Restore replaces the board, typically with a snapshot taken at gesture start
func (s *service) Restore(b models.Board) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	s.board = b
	s.logger.Debug("board restored", "groups", len(b.Groups), "items", b.ItemCount())
	return nil
}

func (s *service) notify(c Change) {
	if s.observer == nil {
		return
	}
	s.observer(c)
}
