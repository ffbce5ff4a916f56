package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/dragboard/internal/board"
)

// CreateGroupForm creates a huh form for adding a new group
func CreateGroupForm(
	title *string,
	description *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Group Title").
			Placeholder("Enter group title...").
			CharLimit(board.MaxTitleLength).
			Validate(requireTitle).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description (optional, markdown)").
			Placeholder("Enter group description...").
			CharLimit(board.MaxDescriptionLength).
			Lines(3).
			Value(description),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this group?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateItemForm creates a huh form for adding an item to a group.
// The form contains a single input field and saves on completion.
func CreateItemForm(title *string, groupTitle string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("New item in " + groupTitle).
			Placeholder("Enter item title...").
			CharLimit(board.MaxTitleLength).
			Validate(requireTitle).
			Value(title),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func requireTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}
