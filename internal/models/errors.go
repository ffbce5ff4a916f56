package models

import "errors"

// Board invariant violations reported by Board.Validate
var (
	// ErrDuplicateGroup indicates the same group id appears twice on the board
	ErrDuplicateGroup = errors.New("duplicate group id")

	// ErrDuplicateItem indicates an item id appears twice, in one group or across groups
	ErrDuplicateItem = errors.New("duplicate item id")

	// ErrNotAGroupID indicates a group carries an id that is not tagged as a group
	ErrNotAGroupID = errors.New("group id is not tagged as a group")

	// ErrNotAnItemID indicates an item carries an id that is not tagged as an item
	ErrNotAnItemID = errors.New("item id is not tagged as an item")
)
