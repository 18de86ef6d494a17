package interfaces

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/model"
)

// UserRepository defines the interface for the single-profile record
type UserRepository interface {
	// Get retrieves the profile, wrapping types.ErrNotFound when absent
	Get(ctx context.Context) (*model.User, error)

	// Save creates or replaces the profile
	Save(ctx context.Context, user *model.User) (*model.User, error)
}
