package gesture

import "errors"

// ErrUnknownPhase indicates an event phase other than start, move or end
var ErrUnknownPhase = errors.New("unknown gesture phase")
