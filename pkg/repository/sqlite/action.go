package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type actionRepository struct {
	db *sql.DB
}

var actionColumns = []string{
	"id", "type", "content", "category", "scheduled_at",
	"priority", "confidence", "embedding", "created_at", "updated_at",
}

func scanAction(row sq.RowScanner) (*model.Action, error) {
	var (
		action      model.Action
		actionType  string
		priority    string
		scheduledAt sql.NullTime
		embedding   sql.NullString
	)

	err := row.Scan(
		&action.ID, &actionType, &action.Content, &action.Category,
		&scheduledAt, &priority, &action.Confidence, &embedding,
		&action.CreatedAt, &action.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	action.Type = types.ActionType(actionType)
	action.Priority = types.Priority(priority)
	if scheduledAt.Valid {
		t := scheduledAt.Time.UTC()
		action.ScheduledAt = &t
	}
	if embedding.Valid && embedding.String != "" {
		if err := json.Unmarshal([]byte(embedding.String), &action.Embedding); err != nil {
			return nil, goerr.Wrap(err, "failed to decode embedding", goerr.V("id", action.ID))
		}
	}

	return &action, nil
}

func actionValues(a *model.Action) (map[string]any, error) {
	var scheduledAt any
	if a.ScheduledAt != nil {
		scheduledAt = a.ScheduledAt.UTC()
	}

	var embedding any
	if len(a.Embedding) > 0 {
		raw, err := json.Marshal(a.Embedding)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode embedding")
		}
		embedding = string(raw)
	}

	return map[string]any{
		"type":         string(a.Type),
		"content":      a.Content,
		"category":     a.Category,
		"scheduled_at": scheduledAt,
		"priority":     string(a.Priority),
		"confidence":   a.Confidence,
		"embedding":    embedding,
	}, nil
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	now := time.Now().UTC()
	values, err := actionValues(action)
	if err != nil {
		return nil, err
	}
	values["created_at"] = now
	values["updated_at"] = now

	query, args, err := sq.Insert("actions").SetMap(values).ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build insert query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert action")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read inserted action id")
	}

	return r.Get(ctx, id)
}

func (r *actionRepository) Get(ctx context.Context, id int64) (*model.Action, error) {
	query, args, err := sq.Select(actionColumns...).
		From("actions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build select query")
	}

	action, err := scanAction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get action", goerr.V("id", id))
	}

	return action, nil
}

func (r *actionRepository) List(ctx context.Context) ([]*model.Action, error) {
	return r.list(ctx, sq.Select(actionColumns...).
		From("actions").
		OrderBy("created_at DESC", "id DESC"))
}

func (r *actionRepository) ListRecent(ctx context.Context, limit int) ([]*model.Action, error) {
	builder := sq.Select(actionColumns...).
		From("actions").
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.list(ctx, builder)
}

func (r *actionRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*model.Action, error) {
	return r.list(ctx, sq.Select(actionColumns...).
		From("actions").
		Where(sq.GtOrEq{"scheduled_at": from.UTC()}).
		Where(sq.Lt{"scheduled_at": to.UTC()}).
		OrderBy("scheduled_at ASC"))
}

func (r *actionRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]*model.Action, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build list query")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions")
	}
	defer rows.Close()

	actions := make([]*model.Action, 0)
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan action row")
		}
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate action rows")
	}

	return actions, nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) (*model.Action, error) {
	values, err := actionValues(action)
	if err != nil {
		return nil, err
	}
	values["updated_at"] = time.Now().UTC()

	query, args, err := sq.Update("actions").
		SetMap(values).
		Where(sq.Eq{"id": action.ID}).
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build update query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update action", goerr.V("id", action.ID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return nil, goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", action.ID))
	}

	return r.Get(ctx, action.ID)
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("actions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return goerr.Wrap(err, "failed to build delete query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return goerr.Wrap(err, "failed to delete action", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to read delete result")
	}
	if affected == 0 {
		return goerr.Wrap(types.ErrNotFound, "action not found", goerr.V("id", id))
	}

	return nil
}
