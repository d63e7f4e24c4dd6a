package cli

import (
	"fmt"
	"log/slog"

	"github.com/me/confgen/internal/config"
	"github.com/me/confgen/internal/generator"
	"github.com/me/confgen/internal/logging"
	"github.com/me/confgen/internal/tables"
	"github.com/spf13/cobra"
)

var (
	flagOutputDir string
	flagWorkers   int
	flagKeepGoing bool
	flagDryRun    bool
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for confgen. Run without
// arguments it performs the whole generation pass.
func NewRootCmd() *cobra.Command {
	defaults := config.DefaultGeneratorConfig()

	root := &cobra.Command{
		Use:   "confgen",
		Short: "Generate the advection test configuration matrix",
		Long: `confgen expands the resolution, case and numeric-scheme tables into every
combination and writes init.conf and run.conf for each one under
{resolution}/{case}/{numeric}/.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			level, err := logging.ParseLevel(flagLogLevel)
			if err != nil {
				return err
			}
			if err := logging.ValidateFormat(flagLogFormat); err != nil {
				return err
			}
			logger = logging.NewLoggerWithWriter(level, flagLogFormat, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := tables.Default()
			if err != nil {
				return err
			}

			cfg := defaults
			cfg.OutputDir = flagOutputDir
			cfg.Workers = flagWorkers
			cfg.KeepGoing = flagKeepGoing
			cfg.DryRun = flagDryRun
			cfg.LogLevel = flagLogLevel
			cfg.LogFormat = flagLogFormat

			g := generator.New(cfg, tbl, logger, generator.WithProgress(cmd.OutOrStdout()))
			sum, err := g.Run(cmd.Context())
			if err != nil {
				if sum.Failed > 1 {
					return fmt.Errorf("%d of %d variants failed: %w", sum.Failed, sum.Variants, err)
				}
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&flagOutputDir, "output-dir", "o", defaults.OutputDir, "Root directory the variant tree is written under")
	root.Flags().IntVar(&flagWorkers, "workers", defaults.Workers, "Variants generated concurrently (1 keeps table order)")
	root.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Attempt every variant and report all failures at the end")
	root.Flags().BoolVar(&flagDryRun, "dry-run", false, "Render every variant without writing files")

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newTablesCmd(),
		newListCmd(),
	)

	return root
}
