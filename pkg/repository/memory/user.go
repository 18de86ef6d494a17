package memory

import (
	"context"
	"sync"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu   sync.RWMutex
	user *model.User
}

func newUserRepository() *userRepository {
	return &userRepository{}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Get(ctx context.Context) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.user == nil {
		return nil, goerr.Wrap(types.ErrNotFound, "user profile not found")
	}

	return copyUser(r.user), nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	saved := copyUser(user)
	saved.ID = 1
	saved.UpdatedAt = now
	if r.user == nil {
		saved.CreatedAt = now
	} else {
		saved.CreatedAt = r.user.CreatedAt
	}

	r.user = saved
	return copyUser(saved), nil
}
