// Package gesture tracks the drag currently in progress.
package gesture

import "github.com/thenoetrevino/dragboard/internal/types"

// State is the phase of the drag session
type State int

const (
	Idle     State = iota // No entity is being dragged
	Dragging              // An active id is set
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session records which entity is being dragged and the target reported by
// the previous event of the drag, so a repeated target is not applied twice.
type Session struct {
	active types.ID
	state  State

	lastTarget types.ID
	tracked    bool
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{state: Idle}
}

// Start begins a drag of the given entity, replacing any drag in progress
func (s *Session) Start(active types.ID) {
	s.active = active
	s.state = Dragging
	s.lastTarget = types.ID{}
	s.tracked = false
}

// End returns the session to Idle
func (s *Session) End() {
	s.active = types.ID{}
	s.state = Idle
	s.lastTarget = types.ID{}
	s.tracked = false
}

// State returns the current phase
func (s *Session) State() State {
	return s.state
}

// Active returns the id being dragged, if any
func (s *Session) Active() (types.ID, bool) {
	if s.state != Dragging {
		return types.ID{}, false
	}
	return s.active, true
}

// Track records target as the one under the pointer for this event and
// reports whether it repeats the previous event's target. Every event counts,
// including ones that leave the board unchanged; a zero target means the
// pointer is over nothing. Events for an entity other than the one started
// are never repeats and are not recorded.
func (s *Session) Track(active, target types.ID) (repeat bool) {
	if s.state != Dragging || active != s.active {
		return false
	}
	repeat = s.tracked && target == s.lastTarget
	s.lastTarget = target
	s.tracked = true
	return repeat
}
