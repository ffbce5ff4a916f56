package board

import "errors"

// Board service errors
var (
	// ErrInvalidBoard indicates a board that breaks the uniqueness invariants
	ErrInvalidBoard = errors.New("invalid board")

	// ErrNoTarget indicates a move or end event with the pointer over nothing
	ErrNoTarget = errors.New("gesture has no target")

	// ErrAlreadyApplied indicates an event whose target is the same as the previous
	// event's target in this drag, so its transition has already run
	ErrAlreadyApplied = errors.New("transition already applied in this gesture")
)
