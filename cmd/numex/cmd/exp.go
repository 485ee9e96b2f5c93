package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numex/internal/logging"
	"github.com/katalvlaran/numex/internal/prompt"
	"github.com/katalvlaran/numex/internal/report"
	"github.com/katalvlaran/numex/internal/session"
)

func newExpCmd(a *app) *cobra.Command {
	var (
		x     float64
		terms int
	)
	cmd := &cobra.Command{
		Use:   "exp",
		Short: "Approximate eˣ by its Taylor series",
		Long: `Reads x and N, then prints

  Part A  the sum of the first N+1 terms
  Part B  the sum stopped once two partial sums differ by at most --eps
  Part C  Part B computed as 1/e^|x| for negative x

followed by the error of each part against math.Exp and the probe table.

Examples:
  numex exp                 # prompts for x and N
  numex exp --x -20         # N from series.fixed_terms
  echo "10 30" | numex exp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in session.ExpInput
			if cmd.Flags().Changed("x") {
				in.X = &x
			}
			if cmd.Flags().Changed("terms") {
				in.Terms = &terms
			}
			s := &session.Exponential{
				In:      prompt.NewReader(cmd.InOrStdin(), cmd.OutOrStdout()),
				Out:     report.New(cmd.OutOrStdout()),
				Log:     logging.Component(a.log, "exp"),
				Options: a.cfg.SeriesOptions(),
				Probes:  a.cfg.Series.Probes,
			}

			return s.Run(cmd.Context(), in)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "argument x (prompted when unset)")
	cmd.Flags().IntVar(&terms, "terms", 0, "term count N for part A (prompted, or series.fixed_terms with --x)")

	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the auto and stable errors for every probe x",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := &session.Exponential{
				Out:     report.New(cmd.OutOrStdout()),
				Log:     logging.Component(a.log, "table"),
				Options: a.cfg.SeriesOptions(),
				Probes:  a.cfg.Series.Probes,
			}

			return s.Table(cmd.Context())
		},
	}
}
