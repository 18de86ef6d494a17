package config

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/repository/firestore"
	"github.com/braindump-app/braindump/pkg/repository/memory"
	"github.com/braindump-app/braindump/pkg/repository/sqlite"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	sqlitePath string
	projectID  string
	databaseID string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (sqlite, firestore or memory)",
			Value:       "sqlite",
			Sources:     cli.EnvVars("BRAINDUMP_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path to the sqlite database file",
			Value:       "braindump.db",
			Sources:     cli.EnvVars("BRAINDUMP_SQLITE_PATH"),
			Destination: &r.sqlitePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("BRAINDUMP_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("BRAINDUMP_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// SQLitePath returns the sqlite database file path
func (r *Repository) SQLitePath() string {
	return r.sqlitePath
}

// ProjectID returns the Firestore project ID
func (r *Repository) ProjectID() string {
	return r.projectID
}

// DatabaseID returns the Firestore database ID
func (r *Repository) DatabaseID() string {
	return r.databaseID
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "sqlite":
		repo, err := sqlite.New(r.sqlitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		if err := repo.Migrate(ctx); err != nil {
			return nil, goerr.Wrap(err, "failed to migrate sqlite schema")
		}
		logging.Default().Info("Using sqlite repository", "path", r.sqlitePath)
		return repo, nil

	case "firestore":
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
