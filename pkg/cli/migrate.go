package cli

import (
	"context"

	"github.com/braindump-app/braindump/pkg/cli/config"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/repository/sqlite"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var repoCfg config.Repository
	var dryRun bool

	flags := repoCfg.Flags()
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Preview changes without applying (firestore backend only)",
		Destination: &dryRun,
	})

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Apply schema migrations for the configured backend",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			switch repoCfg.Backend() {
			case "sqlite":
				repo, err := sqlite.New(repoCfg.SQLitePath())
				if err != nil {
					return goerr.Wrap(err, "failed to open sqlite database")
				}
				defer func() {
					if err := repo.Close(); err != nil {
						logger.Error("failed to close repository", "error", err.Error())
					}
				}()

				if err := repo.Migrate(ctx); err != nil {
					return goerr.Wrap(err, "failed to apply sqlite migrations")
				}
				logger.Info("sqlite migrations applied", "path", repoCfg.SQLitePath())
				return nil

			case "firestore":
				if repoCfg.ProjectID() == "" {
					return goerr.New("firestore-project-id is required when using firestore backend")
				}
				return migrateFirestore(ctx, repoCfg.ProjectID(), repoCfg.DatabaseID(), dryRun)

			case "memory":
				logger.Info("memory backend needs no migration")
				return nil

			default:
				return goerr.New("invalid repository backend", goerr.V("backend", repoCfg.Backend()))
			}
		},
	}
}

func migrateFirestore(ctx context.Context, projectID, databaseID string, dryRun bool) error {
	logger := logging.Default()

	logger.Info("Migrate configuration",
		"projectID", projectID,
		"databaseID", databaseID,
		"dryRun", dryRun)

	indexConfig := getIndexConfig()

	client, err := fireconf.NewClient(ctx, projectID, databaseID)
	if err != nil {
		return goerr.Wrap(err, "failed to create fireconf client")
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close fireconf client", "error", err.Error())
		}
	}()

	if dryRun {
		logger.Info("Dry run mode - previewing changes")
		plan, err := client.GetMigrationPlan(ctx, indexConfig)
		if err != nil {
			return goerr.Wrap(err, "failed to create migration plan")
		}

		if len(plan.Steps) == 0 {
			logger.Info("No changes required")
			return nil
		}

		for _, step := range plan.Steps {
			logger.Info("Migration step",
				"collection", step.Collection,
				"operation", step.Operation,
				"description", step.Description,
				"destructive", step.Destructive)
		}
		return nil
	}

	logger.Info("Applying migrations")
	if err := client.Migrate(ctx, indexConfig); err != nil {
		return goerr.Wrap(err, "failed to apply migrations")
	}
	logger.Info("Migrations applied successfully")
	return nil
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "actions",
				Indexes: []fireconf.Index{
					// ListScheduledBetween: ScheduledAt range + order
					{
						Fields: []fireconf.IndexField{
							{Path: "ScheduledAt", Order: fireconf.OrderAscending},
							{Path: "CreatedAt", Order: fireconf.OrderDescending},
						},
					},
					// Vector search index
					{
						Fields: []fireconf.IndexField{
							{
								Path: "Embedding",
								Vector: &fireconf.VectorConfig{
									Dimension: model.EmbeddingDimension,
								},
							},
						},
					},
				},
			},
		},
	}
}
