package mission

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Status represents the lifecycle state of a mission. Statuses are totally
// ordered and a mission never moves backwards.
type Status string

const (
	StatusCreated    Status = "created"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// statusOrdinals fixes the total order of the lifecycle. The slice index is
// the ordinal; do not reorder.
var statusOrdinals = []Status{StatusCreated, StatusAssigned, StatusInProgress, StatusClosed}

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	for _, known := range statusOrdinals {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Ordinal returns the position of the status in the lifecycle order,
// or -1 for an unknown status
func (s Status) Ordinal() int {
	for i, known := range statusOrdinals {
		if s == known {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether a transition to target is accepted. Equal
// or higher ordinals are accepted; a strictly lower target is a regression
// and is always rejected.
func (s Status) CanTransitionTo(target Status) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	return target.Ordinal() >= s.Ordinal()
}

// ParseStatus converts a string to a Status
func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", shared.NewValidationError("Unknown mission status")
	}
	return s, nil
}

// Statuses returns the lifecycle states in order
func Statuses() []Status {
	out := make([]Status, len(statusOrdinals))
	copy(out, statusOrdinals)
	return out
}
