// Package board holds the pure transitions over a models.Board: locating the
// group that owns an id, the reorder engine driven by drag gestures, and the
// creation actions that append groups and items.
package board

import (
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Locate returns the index of the group that owns id.
// A group id resolves to itself; an item id resolves to the group containing it.
func Locate(b models.Board, id types.ID) (int, bool) {
	switch id.Kind {
	case types.KindGroup:
		for i, g := range b.Groups {
			if g.ID == id {
				return i, true
			}
		}
	case types.KindItem:
		for i, g := range b.Groups {
			if ItemIndex(g, id) >= 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// ItemIndex returns the position of the item in the group, or -1
func ItemIndex(g models.Group, id types.ID) int {
	for i, it := range g.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns the item with the given id
func FindItem(b models.Board, id types.ID) (models.Item, bool) {
	gi, ok := Locate(b, id)
	if !ok || !id.IsItem() {
		return models.Item{}, false
	}
	g := b.Groups[gi]
	return g.Items[ItemIndex(g, id)], true
}

// FindGroup returns the group with the given id
func FindGroup(b models.Board, id types.ID) (models.Group, bool) {
	if !id.IsGroup() {
		return models.Group{}, false
	}
	gi, ok := Locate(b, id)
	if !ok {
		return models.Group{}, false
	}
	return b.Groups[gi], true
}
