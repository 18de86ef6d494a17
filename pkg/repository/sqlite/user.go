package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	db *sql.DB
}

// single-user deployment: the profile always lives at row 1
const userRowID = 1

func (r *userRepository) Get(ctx context.Context) (*model.User, error) {
	query, args, err := sq.Select(
		"id", "full_name", "email", "morning_briefing_time",
		"google_calendar_connected", "notion_connected",
		"created_at", "updated_at",
	).From("users").Where(sq.Eq{"id": userRowID}).ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build select query")
	}

	var user model.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.FullName, &user.Email, &user.MorningBriefingTime,
		&user.GoogleCalendarConnected, &user.NotionConnected,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(types.ErrNotFound, "user profile not found")
		}
		return nil, goerr.Wrap(err, "failed to get user profile")
	}

	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	createdAt := user.CreatedAt
	if existing, err := r.Get(ctx); err == nil {
		createdAt = existing.CreatedAt
	} else if errors.Is(err, types.ErrNotFound) {
		createdAt = now
	} else {
		return nil, err
	}

	query, args, err := sq.Replace("users").SetMap(map[string]any{
		"id":                        userRowID,
		"full_name":                 user.FullName,
		"email":                     user.Email,
		"morning_briefing_time":     user.MorningBriefingTime,
		"google_calendar_connected": user.GoogleCalendarConnected,
		"notion_connected":          user.NotionConnected,
		"created_at":                createdAt,
		"updated_at":                now,
	}).ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build upsert query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, goerr.Wrap(err, "failed to save user profile")
	}

	return r.Get(ctx)
}
