package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sstlab/vigia/pkg/cli/config"
	"github.com/sstlab/vigia/pkg/usecase"
	"github.com/sstlab/vigia/pkg/utils/logging"
	"github.com/sstlab/vigia/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var inventoryID int64
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "inventory-id",
			Usage:       "ID of the inventory to build the report from",
			Required:    true,
			Destination: &inventoryID,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when omitted)",
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Build the risk management program document as JSON",
		Flags:   flags,
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

			uc := usecase.New(repo)
			report, err := uc.Report.BuildReport(ctx, inventoryID)
			if err != nil {
				return goerr.Wrap(err, "failed to build report", goerr.V("inventory_id", inventoryID))
			}

			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode report")
			}
			data = append(data, '\n')

			if output == "" {
				safe.Write(ctx, os.Stdout, data)
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return goerr.Wrap(err, "failed to write report", goerr.V("path", output))
			}
			logging.Default().Info("Report written", "path", output, "inventory_id", inventoryID)
			return nil
		},
	}
}
