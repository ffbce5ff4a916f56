package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// FormState holds the active huh form and the values its fields write to.
// Fields are exported so forms can bind to them by pointer.
type FormState struct {
	GroupForm *huh.Form
	ItemForm  *huh.Form

	FormTitle       string
	FormDescription string
	FormConfirm     bool

	// TargetGroup is the group a new item is added to
	TargetGroup types.ID
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{FormConfirm: true}
}

// Reset clears the forms and their values.
func (s *FormState) Reset() {
	*s = FormState{FormConfirm: true}
}
