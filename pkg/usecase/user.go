package usecase

import (
	"context"
	"errors"
	"regexp"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// UserUseCase serves the single user profile. The profile is created
// with defaults on first read.
type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) Get(ctx context.Context) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	created, err := uc.repo.User().Save(ctx, model.DefaultUser())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create default user profile")
	}
	return created, nil
}

// UserPatch carries the updatable profile fields. Nil means unchanged.
type UserPatch struct {
	FullName                *string `json:"full_name"`
	Email                   *string `json:"email"`
	MorningBriefingTime     *string `json:"morning_briefing_time"`
	GoogleCalendarConnected *bool   `json:"google_calendar_connected"`
	NotionConnected         *bool   `json:"notion_connected"`
}

var briefingTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (uc *UserUseCase) Update(ctx context.Context, patch *UserPatch) (*model.User, error) {
	user, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.MorningBriefingTime != nil {
		if !briefingTimePattern.MatchString(*patch.MorningBriefingTime) {
			return nil, goerr.Wrap(ErrInvalidInput, "briefing time must be HH:MM",
				goerr.V("value", *patch.MorningBriefingTime))
		}
		user.MorningBriefingTime = *patch.MorningBriefingTime
	}
	if patch.GoogleCalendarConnected != nil {
		user.GoogleCalendarConnected = *patch.GoogleCalendarConnected
	}
	if patch.NotionConnected != nil {
		user.NotionConnected = *patch.NotionConnected
	}

	saved, err := uc.repo.User().Save(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save user profile")
	}
	return saved, nil
}
