package board

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 500
)

// AddGroup appends a new, empty group to the end of the board
func AddGroup(b models.Board, id types.ID, title, description string) (models.Board, error) {
	if !id.IsGroup() {
		return b, fmt.Errorf("%w: %s is not a group id", ErrWrongKind, id)
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return b, err
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return b, ErrDescriptionTooLong
	}
	if _, exists := Locate(b, id); exists {
		return b, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	groups := make([]models.Group, 0, len(b.Groups)+1)
	groups = append(groups, b.Groups...)
	groups = append(groups, models.Group{
		ID:          id,
		Title:       title,
		Description: description,
		Items:       []models.Item{},
	})
	return models.Board{Groups: groups}, nil
}

// AddItem appends a new item to the end of the given group
func AddItem(b models.Board, groupID, id types.ID, title string) (models.Board, error) {
	if !id.IsItem() {
		return b, fmt.Errorf("%w: %s is not an item id", ErrWrongKind, id)
	}
	if !groupID.IsGroup() {
		return b, fmt.Errorf("%w: %s is not a group id", ErrWrongKind, groupID)
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return b, err
	}
	gi, ok := Locate(b, groupID)
	if !ok {
		return b, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	if _, exists := Locate(b, id); exists {
		return b, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	groups := slices.Clone(b.Groups)
	groups[gi].Items = insertAt(groups[gi].Items, len(groups[gi].Items), models.Item{ID: id, Title: title})
	return models.Board{Groups: groups}, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
