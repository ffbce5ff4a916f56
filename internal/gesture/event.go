package gesture

import (
	"fmt"
	"strings"
)

// Phase is the stage of a drag that an input event reports
type Phase string

const (
	PhaseStart Phase = "start" // Entity picked up
	PhaseMove  Phase = "move"  // Pointer over a new target; previews the move
	PhaseEnd   Phase = "end"   // Entity released; commits over the target, if any
)

// Event is a gesture event as delivered by an input layer that only knows raw
// identifier strings. Target is empty when the pointer is over nothing.
type Event struct {
	Phase  Phase  `yaml:"phase" json:"phase"`
	Active string `yaml:"active" json:"active"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
}

// HasTarget reports whether the pointer was over a drop target
func (e Event) HasTarget() bool {
	return strings.TrimSpace(e.Target) != ""
}

func (e Event) String() string {
	if !e.HasTarget() {
		return fmt.Sprintf("%s %s", e.Phase, e.Active)
	}
	return fmt.Sprintf("%s %s -> %s", e.Phase, e.Active, e.Target)
}

// Validate checks the phase is one of the known phases
func (e Event) Validate() error {
	switch e.Phase {
	case PhaseStart, PhaseMove, PhaseEnd:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPhase, e.Phase)
}
