package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("VIGIA_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("VIGIA_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			indexConfig := getIndexConfig()

			client, err := fireconf.New(ctx, projectID, databaseID, indexConfig,
				fireconf.WithDryRun(dryRun))
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

				currentConfig, err := client.Import(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to import current Firestore config")
				}

				diff, err := client.DiffConfigs(currentConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to calculate diff")
				}

				if len(diff.Collections) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, col := range diff.Collections {
					logger.Info("Collection diff",
						"collection", col.Name,
						"action", col.Action,
						"indexes_to_add", len(col.IndexesToAdd),
						"indexes_to_delete", len(col.IndexesToDelete))
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration. Single-field
// equality filters are covered by automatic indexes; only the norm detail
// lookup by norm and danger needs a composite index.
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "norm_details",
				Indexes: []fireconf.Index{
					// FindByNormDanger: NormID ASC, DangerID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "NormID", Order: fireconf.OrderAscending},
							{Path: "DangerID", Order: fireconf.OrderAscending},
						},
					},
				},
			},
		},
	}
}
