package usecase_test

import (
	"context"
	"testing"

	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestUserGetCreatesDefault(t *testing.T) {
	uc, _ := newTestUseCases(&mockGenerator{})
	ctx := context.Background()

	user := gt.R1(uc.User.Get(ctx)).NoError(t)
	gt.Value(t, user.FullName).Equal("BrainDump User")
	gt.Value(t, user.MorningBriefingTime).Equal("09:00")
	gt.Value(t, user.NotionConnected).Equal(false)

	// Second read returns the same profile, not a new one
	again := gt.R1(uc.User.Get(ctx)).NoError(t)
	gt.Value(t, again.CreatedAt).Equal(user.CreatedAt)
}

func TestUserUpdatePatchesFields(t *testing.T) {
	uc, _ := newTestUseCases(&mockGenerator{})
	ctx := context.Background()

	name := "Ada"
	briefing := "07:30"
	notion := true
	updated := gt.R1(uc.User.Update(ctx, &usecase.UserPatch{
		FullName:            &name,
		MorningBriefingTime: &briefing,
		NotionConnected:     &notion,
	})).NoError(t)

	gt.Value(t, updated.FullName).Equal("Ada")
	gt.Value(t, updated.MorningBriefingTime).Equal("07:30")
	gt.Value(t, updated.NotionConnected).Equal(true)
	// untouched fields keep their defaults
	gt.Value(t, updated.Email).Equal("user@braindump.app")
}

func TestUserUpdateRejectsBadBriefingTime(t *testing.T) {
	uc, _ := newTestUseCases(&mockGenerator{})

	bad := "25:99"
	_, err := uc.User.Update(context.Background(), &usecase.UserPatch{
		MorningBriefingTime: &bad,
	})
	gt.Error(t, err).Is(usecase.ErrInvalidInput)
}
