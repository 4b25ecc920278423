package main

import (
	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configFile string
	logLevel   string
	format     string

	cfg    *config.AppConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "scraper",
		Short:        "Plan and run LinkedIn profile and company scrapes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Logger.Level = a.logLevel
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cfg.Logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.format, "format", "table", "output format (table, json)")

	root.AddCommand(newConfigCmd(a), newPlanCmd(a), newRunCmd(a))
	return root
}
