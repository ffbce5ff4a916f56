package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Transition names which of the four gesture topologies produced a new board
type Transition int

const (
	TransitionNone          Transition = iota // Board unchanged
	TransitionReorderItem                     // Item over item in the same group
	TransitionTransferItem                    // Item over item in another group
	TransitionDropIntoGroup                   // Item over a group surface
	TransitionReorderGroup                    // Group over group
)

func (t Transition) String() string {
	switch t {
	case TransitionReorderItem:
		return "reorder_item"
	case TransitionTransferItem:
		return "transfer_item"
	case TransitionDropIntoGroup:
		return "drop_into_group"
	case TransitionReorderGroup:
		return "reorder_group"
	default:
		return "none"
	}
}

// Outcome describes what a transition did.
// Skipped is nil when the board changed and otherwise holds the reason it did not.
type Outcome struct {
	Transition Transition
	Skipped    error
}

// Changed reports whether the transition produced a different board
func (o Outcome) Changed() bool {
	return o.Skipped == nil && o.Transition != TransitionNone
}

func skip(reason error) Outcome {
	return Outcome{Transition: TransitionNone, Skipped: reason}
}

// PreviewMove computes the board for one gesture-move tick
func PreviewMove(b models.Board, active, target types.ID) models.Board {
	next, _ := Apply(b, active, target)
	return next
}

// CommitMove computes the board for gesture end.
// It runs the same transition as PreviewMove so the committed board always
// matches the last preview for the same pointer position.
func CommitMove(b models.Board, active, target types.ID) models.Board {
	next, _ := Apply(b, active, target)
	return next
}

// Apply dispatches on the (active, target) kind pair and returns the new board.
// When no transition applies, the input board is returned as is.
func Apply(b models.Board, active, target types.ID) (models.Board, Outcome) {
	if active.Kind == types.KindUnknown || target.Kind == types.KindUnknown {
		return b, skip(fmt.Errorf("%w: active=%q target=%q", types.ErrMalformedID, active.Value, target.Value))
	}
	if active == target {
		return b, skip(ErrSelfTarget)
	}

	switch {
	case active.IsItem() && target.IsItem():
		return moveItemOverItem(b, active, target)
	case active.IsItem() && target.IsGroup():
		return dropItemIntoGroup(b, active, target)
	case active.IsGroup() && target.IsGroup():
		return reorderGroups(b, active, target)
	}
	return b, skip(ErrUnsupportedPair)
}

// moveItemOverItem handles both the same-group reorder and the cross-group transfer
func moveItemOverItem(b models.Board, active, target types.ID) (models.Board, Outcome) {
	src, ok := Locate(b, active)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, active))
	}
	dst, ok := Locate(b, target)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, target))
	}

	from := ItemIndex(b.Groups[src], active)
	to := ItemIndex(b.Groups[dst], target)

	groups := slices.Clone(b.Groups)
	if src == dst {
		groups[src].Items = moveIndex(groups[src].Items, from, to)
		return models.Board{Groups: groups}, Outcome{Transition: TransitionReorderItem}
	}

	moved := groups[src].Items[from]
	groups[src].Items = removeIndex(groups[src].Items, from)
	groups[dst].Items = insertAt(groups[dst].Items, to, moved)
	return models.Board{Groups: groups}, Outcome{Transition: TransitionTransferItem}
}

// dropItemIntoGroup appends the item to a group it does not already belong to
func dropItemIntoGroup(b models.Board, active, target types.ID) (models.Board, Outcome) {
	src, ok := Locate(b, active)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, active))
	}
	dst, ok := Locate(b, target)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, target))
	}
	if src == dst {
		return b, skip(ErrAlreadyInGroup)
	}

	from := ItemIndex(b.Groups[src], active)

	groups := slices.Clone(b.Groups)
	moved := groups[src].Items[from]
	groups[src].Items = removeIndex(groups[src].Items, from)
	groups[dst].Items = insertAt(groups[dst].Items, len(groups[dst].Items), moved)
	return models.Board{Groups: groups}, Outcome{Transition: TransitionDropIntoGroup}
}

func reorderGroups(b models.Board, active, target types.ID) (models.Board, Outcome) {
	from, ok := Locate(b, active)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, active))
	}
	to, ok := Locate(b, target)
	if !ok {
		return b, skip(fmt.Errorf("%w: %s", ErrUnresolved, target))
	}
	return models.Board{Groups: moveIndex(b.Groups, from, to)}, Outcome{Transition: TransitionReorderGroup}
}

// moveIndex returns a new slice with the element at from extracted and
// reinserted at to. Elements between the two positions shift by one.
func moveIndex[T any](s []T, from, to int) []T {
	return insertAt(removeIndex(s, from), to, s[from])
}

// removeIndex returns a new slice without the element at i
func removeIndex[T any](s []T, i int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// insertAt returns a new slice with v inserted at i
func insertAt[T any](s []T, i int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}
