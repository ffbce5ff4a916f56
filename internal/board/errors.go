package board

import "errors"

// Reasons a gesture transition left the board unchanged.
// These are expected states of a live drag, not failures: the engine reports
// them in Outcome.Skipped and never returns them to the user.
var (
	// ErrSelfTarget indicates the pointer is over the dragged entity itself
	ErrSelfTarget = errors.New("active and target are the same entity")

	// ErrUnresolved indicates the active or target id is not on the board
	ErrUnresolved = errors.New("identifier not found on board")

	// ErrUnsupportedPair indicates an active/target kind pair with no transition (group over item)
	ErrUnsupportedPair = errors.New("no transition for this active/target pair")

	// ErrAlreadyInGroup indicates an item dropped onto the surface of the group it already belongs to
	ErrAlreadyInGroup = errors.New("item already belongs to the target group")
)

// Creation action errors
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title cannot exceed 50 characters")
	ErrDescriptionTooLong = errors.New("description cannot exceed 500 characters")
	ErrGroupNotFound      = errors.New("group not found")
	ErrDuplicateID        = errors.New("identifier already exists on board")
	ErrWrongKind          = errors.New("identifier has the wrong kind")
)
