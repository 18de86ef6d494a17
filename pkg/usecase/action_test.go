package usecase_test

import (
	"context"
	"testing"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestActionGetAndDelete(t *testing.T) {
	uc, repo := newTestUseCases(&mockGenerator{})
	ctx := context.Background()

	created := gt.R1(repo.Action().Create(ctx, &model.Action{
		Type:       types.ActionTypeTodo,
		Content:    "call mom",
		Confidence: 0.9,
	})).NoError(t)

	got := gt.R1(uc.Action.Get(ctx, created.ID)).NoError(t)
	gt.Value(t, got.Content).Equal("call mom")

	gt.NoError(t, uc.Action.Delete(ctx, created.ID))

	_, err := uc.Action.Get(ctx, created.ID)
	gt.Error(t, err).Is(usecase.ErrActionNotFound)
}

func TestActionDeleteUnknownID(t *testing.T) {
	uc, _ := newTestUseCases(&mockGenerator{})

	err := uc.Action.Delete(context.Background(), 12345)
	gt.Error(t, err).Is(usecase.ErrActionNotFound)
}

func TestActionListNewestFirst(t *testing.T) {
	uc, repo := newTestUseCases(&mockGenerator{})
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		gt.R1(repo.Action().Create(ctx, &model.Action{
			Type:       types.ActionTypeNote,
			Content:    content,
			Confidence: 0.9,
		})).NoError(t)
	}

	actions := gt.R1(uc.Action.List(ctx)).NoError(t)
	gt.Array(t, actions).Length(3)
	gt.Value(t, actions[0].Content).Equal("third")
	gt.Value(t, actions[2].Content).Equal("first")
}
