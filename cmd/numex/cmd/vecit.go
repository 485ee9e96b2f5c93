package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numex/internal/logging"
	"github.com/katalvlaran/numex/internal/prompt"
	"github.com/katalvlaran/numex/internal/report"
	"github.com/katalvlaran/numex/internal/session"
)

func newVecitCmd(a *app) *cobra.Command {
	var dim int
	cmd := &cobra.Command{
		Use:   "vecit",
		Short: "Vector iteration u^[n] = A^n · u0",
		Long: `Reads a dim×dim matrix A once, then repeatedly reads a start vector u0
and an exponent n and prints u^[n] = A^n · u0. Entering n <= 0, or ending
the input, stops the loop.

Examples:
  numex vecit
  numex vecit --dim 2 < queries.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("dim") {
				a.cfg.Matrix.Dimension = dim
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			s := &session.VectorIteration{
				In:  prompt.NewReader(cmd.InOrStdin(), cmd.OutOrStdout()),
				Out: report.New(cmd.OutOrStdout()),
				Log: logging.Component(a.log, "vecit"),
				Dim: a.cfg.Matrix.Dimension,
			}

			return s.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&dim, "dim", "d", 0, "matrix dimension (default matrix.dimension)")

	return cmd
}
