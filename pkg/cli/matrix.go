package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdMatrix() *cli.Command {
	var noColor bool

	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the 5x5 risk matrix and decision criteria",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if noColor {
				color.NoColor = true
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

			fmt.Fprintln(w, "SEV\\PROB\t1\t2\t3\t4\t5")
			for _, row := range model.RiskMatrix() {
				fmt.Fprintf(w, "%d", row[0].Severity)
				for _, cell := range row {
					fmt.Fprintf(w, "\t%s", bandColor(cell.Score.Band).Sprintf("%2d", cell.Score.Value))
				}
				fmt.Fprintln(w)
			}
			if err := w.Flush(); err != nil {
				return goerr.Wrap(err, "failed to print matrix")
			}

			fmt.Println()
			for _, band := range types.AllRiskBands() {
				fmt.Printf("%s: %s\n", bandColor(band).Sprint(band.Label()), band.Action())
			}

			return nil
		},
	}
}

func bandColor(band types.RiskBand) *color.Color {
	switch band {
	case types.RiskBandVeryLow:
		return color.New(color.FgHiBlue)
	case types.RiskBandLow:
		return color.New(color.FgGreen)
	case types.RiskBandMedium:
		return color.New(color.FgYellow)
	case types.RiskBandHigh:
		return color.New(color.FgRed)
	case types.RiskBandVeryHigh:
		return color.New(color.FgHiRed, color.Bold)
	default:
		return color.New(color.Reset)
	}
}
