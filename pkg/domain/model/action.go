package model

import (
	"fmt"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/types"
)

// Action is one extracted actionable item. The JSON tags define the wire
// schema the model is instructed to emit; persistence-only fields are
// excluded from it.
type Action struct {
	ID          int64            `json:"-"`
	Type        types.ActionType `json:"type"`
	Content     string           `json:"content"`
	Category    string           `json:"category,omitempty"`
	ScheduledAt *time.Time       `json:"scheduled_at,omitempty"`
	Priority    types.Priority   `json:"priority,omitempty"`
	Confidence  float64          `json:"confidence"`
	Embedding   []float32        `json:"-"`
	CreatedAt   time.Time        `json:"-"`
	UpdatedAt   time.Time        `json:"-"`
}

// ContextLine renders the action as a single line for the Q&A prompt
// context window: "- [2026-08-29 09:00] TODO (Health): take medicine"
func (a *Action) ContextLine() string {
	category := a.Category
	if category == "" {
		category = "General"
	}
	return fmt.Sprintf("- [%s] %s (%s): %s",
		a.CreatedAt.Format("2006-01-02 15:04"), a.Type, category, a.Content)
}
