package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type actionRepository struct {
	mu      sync.RWMutex
	actions map[int64]*model.Action
	nextID  int64
}

func newActionRepository() *actionRepository {
	return &actionRepository{
		actions: make(map[int64]*model.Action),
		nextID:  1,
	}
}

// copyAction creates a deep copy of an action
func copyAction(a *model.Action) *model.Action {
	copied := &model.Action{
		ID:         a.ID,
		Type:       a.Type,
		Content:    a.Content,
		Category:   a.Category,
		Priority:   a.Priority,
		Confidence: a.Confidence,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}

	if a.ScheduledAt != nil {
		t := *a.ScheduledAt
		copied.ScheduledAt = &t
	}
	if a.Embedding != nil {
		copied.Embedding = make([]float32, len(a.Embedding))
		copy(copied.Embedding, a.Embedding)
	}

	return copied
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyAction(action)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.actions[created.ID] = created
	return copyAction(created), nil
}

func (r *actionRepository) Get(ctx context.Context, id int64) (*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	action, exists := r.actions[id]
	if !exists {
		return nil, goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", id))
	}

	return copyAction(action), nil
}

func (r *actionRepository) List(ctx context.Context) ([]*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*model.Action, 0, len(r.actions))
	for _, action := range r.actions {
		actions = append(actions, copyAction(action))
	}

	sortNewestFirst(actions)
	return actions, nil
}

func (r *actionRepository) ListRecent(ctx context.Context, limit int) ([]*model.Action, error) {
	actions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(actions) > limit {
		actions = actions[:limit]
	}
	return actions, nil
}

func (r *actionRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*model.Action, 0)
	for _, action := range r.actions {
		if action.ScheduledAt == nil {
			continue
		}
		at := *action.ScheduledAt
		if at.Before(from) || !at.Before(to) {
			continue
		}
		actions = append(actions, copyAction(action))
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].ScheduledAt.Before(*actions[j].ScheduledAt)
	})
	return actions, nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.actions[action.ID]
	if !exists {
		return nil, goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", action.ID))
	}

	updated := copyAction(action)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.actions[updated.ID] = updated
	return copyAction(updated), nil
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[id]; !exists {
		return goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", id))
	}

	delete(r.actions, id)
	return nil
}

func sortNewestFirst(actions []*model.Action) {
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].CreatedAt.Equal(actions[j].CreatedAt) {
			return actions[i].ID > actions[j].ID
		}
		return actions[i].CreatedAt.After(actions[j].CreatedAt)
	})
}
