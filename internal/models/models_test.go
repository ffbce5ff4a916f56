package models

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	all := []error{ErrDuplicateGroup, ErrDuplicateItem, ErrNotAGroupID, ErrNotAnItemID}
	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Errorf("%v should not match %v", all[i], all[j])
			}
		}
	}
}

// ============================================================================
// Board Tests
// ============================================================================

func sampleBoard() Board {
	return Board{Groups: []Group{
		{ID: types.GroupID("g1"), Title: "To Do", Items: []Item{
			{ID: types.ItemID("a"), Title: "A"},
			{ID: types.ItemID("b"), Title: "B"},
		}},
		{ID: types.GroupID("g2"), Title: "Done"},
	}}
}

func TestBoard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Board)
		wantErr error
	}{
		{name: "valid board", mutate: func(b *Board) {}},
		{
			name: "duplicate item across groups",
			mutate: func(b *Board) {
				b.Groups[1].Items = []Item{{ID: types.ItemID("a")}}
			},
			wantErr: ErrDuplicateItem,
		},
		{
			name: "duplicate item within a group",
			mutate: func(b *Board) {
				b.Groups[0].Items = append(b.Groups[0].Items, Item{ID: types.ItemID("b")})
			},
			wantErr: ErrDuplicateItem,
		},
		{
			name: "duplicate group",
			mutate: func(b *Board) {
				b.Groups[1].ID = types.GroupID("g1")
			},
			wantErr: ErrDuplicateGroup,
		},
		{
			name: "group tagged as item",
			mutate: func(b *Board) {
				b.Groups[1].ID = types.ItemID("g2")
			},
			wantErr: ErrNotAGroupID,
		},
		{
			name: "item tagged as group",
			mutate: func(b *Board) {
				b.Groups[0].Items[0].ID = types.GroupID("a")
			},
			wantErr: ErrNotAnItemID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoard_CloneIsIndependent(t *testing.T) {
	original := sampleBoard()
	clone := original.Clone()

	clone.Groups[0].Items[0].Title = "changed"
	clone.Groups[0].Items = append(clone.Groups[0].Items, Item{ID: types.ItemID("c")})

	if original.Groups[0].Items[0].Title != "A" {
		t.Errorf("original item title = %q, want A", original.Groups[0].Items[0].Title)
	}
	if len(original.Groups[0].Items) != 2 {
		t.Errorf("original item count = %d, want 2", len(original.Groups[0].Items))
	}
	if original.Equal(clone) {
		t.Error("Equal() = true after diverging the clone")
	}
	if !original.Equal(sampleBoard()) {
		t.Error("Equal() = false for identical boards")
	}
}

func TestBoard_ItemCount(t *testing.T) {
	if got := sampleBoard().ItemCount(); got != 2 {
		t.Errorf("ItemCount() = %d, want 2", got)
	}
	if got := (Board{}).ItemCount(); got != 0 {
		t.Errorf("ItemCount() on empty board = %d, want 0", got)
	}
}
