package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Client is a sqlite-backed repository. A single file database is
// enough for the single-user deployment model.
type Client struct {
	db     *sql.DB
	action *actionRepository
	user   *userRepository
}

var _ interfaces.Repository = &Client{}

func New(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", dbPath))
	}

	// sqlite handles one writer at a time
	db.SetMaxOpenConns(1)

	return &Client{
		db:     db,
		action: &actionRepository{db: db},
		user:   &userRepository{db: db},
	}, nil
}

// Migrate applies pending schema migrations.
func (c *Client) Migrate(ctx context.Context) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to open migrations")
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, c.db, sub)
	if err != nil {
		return goerr.Wrap(err, "failed to create migration provider")
	}

	if _, err := provider.Up(ctx); err != nil {
		return goerr.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func (c *Client) Action() interfaces.ActionRepository {
	return c.action
}

func (c *Client) User() interfaces.UserRepository {
	return c.user
}

func (c *Client) Close() error {
	if err := c.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close sqlite database")
	}
	return nil
}
