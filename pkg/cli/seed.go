package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sstlab/vigia/pkg/cli/config"
	"github.com/sstlab/vigia/pkg/usecase"
	"github.com/sstlab/vigia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var catalogPath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog file (uses the built-in catalog when omitted)",
			Sources:     cli.EnvVars("VIGIA_SEED_CATALOG"),
			Destination: &catalogPath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the reference catalog (segments, dangers, norms) into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			var catalog *usecase.SeedCatalog
			if catalogPath != "" {
				// #nosec G304 - path comes from a CLI flag
				data, err := os.ReadFile(catalogPath)
				if err != nil {
					return goerr.Wrap(err, "failed to read catalog file", goerr.V("path", catalogPath))
				}
				catalog, err = usecase.ParseSeedCatalog(data)
				if err != nil {
					return goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", catalogPath))
				}
				logging.Default().Info("Using catalog file", "path", catalogPath)
			} else {
				catalog, err = usecase.DefaultSeedCatalog()
				if err != nil {
					return goerr.Wrap(err, "failed to load built-in catalog")
				}
				logging.Default().Info("Using built-in catalog")
			}

			uc := usecase.NewSeedUseCase(repo)
			if err := uc.Seed(ctx, catalog); err != nil {
				return goerr.Wrap(err, "failed to seed catalog")
			}

			return nil
		},
	}
}
