package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numex/internal/config"
	"github.com/katalvlaran/numex/internal/logging"
	"github.com/katalvlaran/numex/series"
)

// app is the state shared by all subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	eps       float64
	maxIter   int

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd builds the numex command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "numex",
		Short: "Taylor-series eˣ and matrix-power vector iteration",
		Long: `numex runs two small numerical experiments.

Commands:
  exp    - approximate eˣ by its Taylor series (fixed N, auto-stop, stable)
  vecit  - vector iteration u^[n] = A^n · u0 over a square float32 matrix
  table  - error table of the auto and stable series on the probe set

Configuration is read from defaults, an optional --config file (.toml, .yaml),
NUMEX_* environment variables and the flags below, in that order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (console or json)")
	pf.Float64Var(&a.eps, "eps", series.DefaultEpsilon, "stopping tolerance of the auto-stopping series")
	pf.IntVar(&a.maxIter, "max-iter", series.DefaultMaxIterations, "iteration cap of the auto-stopping series")

	root.AddCommand(
		newExpCmd(a),
		newVecitCmd(a),
		newTableCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree with ctx; cancelling ctx stops a running session.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads the configuration, applies explicitly set flags on top of it and
// builds the logger. Logs go to the command's stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("eps") {
		cfg.Series.Epsilon = a.eps
	}
	if flags.Changed("max-iter") {
		cfg.Series.MaxIterations = a.maxIter
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug().Str("config", a.cfgFile).Str("command", cmd.Name()).Msg("configuration loaded")

	return nil
}
