package memory_test

import (
	"context"
	"testing"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestUserGetBeforeSave(t *testing.T) {
	repo := memory.New()

	_, err := repo.User().Get(context.Background())
	gt.Error(t, err).Is(types.ErrNotFound)
}

func TestUserSaveAndGet(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	saved := gt.R1(repo.User().Save(ctx, model.DefaultUser())).NoError(t)
	gt.Value(t, saved.ID).Equal(int64(1))
	gt.Value(t, saved.CreatedAt.IsZero()).Equal(false)

	got := gt.R1(repo.User().Get(ctx)).NoError(t)
	gt.Value(t, got.FullName).Equal("BrainDump User")

	got.FullName = "Ada"
	again := gt.R1(repo.User().Save(ctx, got)).NoError(t)
	gt.Value(t, again.FullName).Equal("Ada")
	gt.Value(t, again.CreatedAt).Equal(saved.CreatedAt)
}
