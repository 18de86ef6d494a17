package types

import "fmt"

// Priority is the model-reported urgency of an action
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// AllPriorities returns all valid priorities
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid checks if the priority is valid. The empty priority is valid:
// the model omits it when urgency was not inferable.
func (p Priority) IsValid() bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses a string into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
