package models

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Item represents a single card on the board
type Item struct {
	ID    types.ID `yaml:"id" json:"id"`
	Title string   `yaml:"title" json:"title"`
}

// Group represents a board column holding an ordered list of items.
// Position is implicit: it is the group's index in the board and each item's
// index in Items.
type Group struct {
	ID          types.ID `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Items       []Item   `yaml:"items" json:"items"`
}

// Board is the ordered sequence of groups.
// Boards are treated as values: transitions build a new Board and never write
// into slices that a previous Board still references.
type Board struct {
	Groups []Group `yaml:"groups" json:"groups"`
}

// ItemCount returns the number of items across all groups
func (b Board) ItemCount() int {
	total := 0
	for _, g := range b.Groups {
		total += len(g.Items)
	}
	return total
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	groups := make([]Group, len(b.Groups))
	for i, g := range b.Groups {
		groups[i] = g.Clone()
	}
	return Board{Groups: groups}
}

// Clone returns a copy of the group with its own item slice
func (g Group) Clone() Group {
	items := make([]Item, len(g.Items))
	copy(items, g.Items)
	g.Items = items
	return g
}

// Equal reports whether two boards have the same groups and items in the same order
func (b Board) Equal(other Board) bool {
	if len(b.Groups) != len(other.Groups) {
		return false
	}
	for i := range b.Groups {
		if !b.Groups[i].Equal(other.Groups[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two groups match field by field, including item order
func (g Group) Equal(other Group) bool {
	if g.ID != other.ID || g.Title != other.Title || g.Description != other.Description {
		return false
	}
	if len(g.Items) != len(other.Items) {
		return false
	}
	for i := range g.Items {
		if g.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}

// Validate checks the board invariants: group ids and item ids are unique and
// correctly tagged, so every item belongs to exactly one group.
func (b Board) Validate() error {
	seen := make(map[types.ID]bool, len(b.Groups)+b.ItemCount())
	for _, g := range b.Groups {
		if !g.ID.IsGroup() {
			return fmt.Errorf("%w: %s", ErrNotAGroupID, g.ID)
		}
		if seen[g.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateGroup, g.ID)
		}
		seen[g.ID] = true
		for _, it := range g.Items {
			if !it.ID.IsItem() {
				return fmt.Errorf("%w: %s", ErrNotAnItemID, it.ID)
			}
			if seen[it.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return nil
}
