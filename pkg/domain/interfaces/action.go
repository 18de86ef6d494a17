package interfaces

import (
	"context"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
)

// ActionRepository defines the interface for Action data access
type ActionRepository interface {
	// Create creates a new action with auto-generated ID
	Create(ctx context.Context, action *model.Action) (*model.Action, error)

	// Get retrieves an action by ID
	Get(ctx context.Context, id int64) (*model.Action, error)

	// List retrieves all actions, newest first
	List(ctx context.Context) ([]*model.Action, error)

	// ListRecent retrieves up to limit actions, newest first
	ListRecent(ctx context.Context, limit int) ([]*model.Action, error)

	// ListScheduledBetween retrieves actions scheduled in [from, to),
	// ordered by scheduled time
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*model.Action, error)

	// Update updates an existing action
	Update(ctx context.Context, action *model.Action) (*model.Action, error)

	// Delete deletes an action by ID
	Delete(ctx context.Context, id int64) error
}
