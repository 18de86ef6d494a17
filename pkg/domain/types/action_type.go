package types

import "fmt"

// ActionType classifies an extracted actionable item
type ActionType string

const (
	ActionTypeCalendarEvent ActionType = "CALENDAR_EVENT"
	ActionTypeShoppingItem  ActionType = "SHOPPING_ITEM"
	ActionTypeTodo          ActionType = "TODO"
	ActionTypeNote          ActionType = "NOTE"
	ActionTypeAlarm         ActionType = "ALARM"
	ActionTypeReminder      ActionType = "REMINDER"
)

// AllActionTypes returns all valid action types
func AllActionTypes() []ActionType {
	return []ActionType{
		ActionTypeCalendarEvent,
		ActionTypeShoppingItem,
		ActionTypeTodo,
		ActionTypeNote,
		ActionTypeAlarm,
		ActionTypeReminder,
	}
}

// IsValid checks if the action type is valid
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeCalendarEvent,
		ActionTypeShoppingItem,
		ActionTypeTodo,
		ActionTypeNote,
		ActionTypeAlarm,
		ActionTypeReminder:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action type
func (t ActionType) String() string {
	return string(t)
}

// Scheduled reports whether the type usually carries a date
// (used by the morning briefing to pick items worth announcing)
func (t ActionType) Scheduled() bool {
	switch t {
	case ActionTypeCalendarEvent, ActionTypeAlarm, ActionTypeReminder:
		return true
	default:
		return false
	}
}

// ParseActionType parses a string into an ActionType
func ParseActionType(s string) (ActionType, error) {
	t := ActionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid action type: %s", s)
	}
	return t, nil
}
