package testutil

import (
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// GroupSpec is a compact description of a group for test boards
type GroupSpec struct {
	Value string
	Title string
	Items []string
}

// G describes a group titled after its id value; items are titled the same way
func G(value string, items ...string) GroupSpec {
	return GroupSpec{Value: value, Title: value, Items: items}
}

// Board builds a board from group specs, in order
func Board(groups ...GroupSpec) models.Board {
	b := models.Board{Groups: make([]models.Group, 0, len(groups))}
	for _, spec := range groups {
		g := models.Group{
			ID:    types.GroupID(spec.Value),
			Title: spec.Title,
			Items: make([]models.Item, 0, len(spec.Items)),
		}
		for _, v := range spec.Items {
			g.Items = append(g.Items, models.Item{ID: types.ItemID(v), Title: v})
		}
		b.Groups = append(b.Groups, g)
	}
	return b
}

// ItemValues returns the id values of a group's items in order
func ItemValues(g models.Group) []string {
	out := make([]string, 0, len(g.Items))
	for _, it := range g.Items {
		out = append(out, it.ID.Value)
	}
	return out
}

// GroupValues returns the id values of a board's groups in order
func GroupValues(b models.Board) []string {
	out := make([]string, 0, len(b.Groups))
	for _, g := range b.Groups {
		out = append(out, g.ID.Value)
	}
	return out
}

// Layout maps each group value to its item values
func Layout(b models.Board) map[string][]string {
	out := make(map[string][]string, len(b.Groups))
	for _, g := range b.Groups {
		out[g.ID.Value] = ItemValues(g)
	}
	return out
}
