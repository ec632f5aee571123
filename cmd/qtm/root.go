package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goqtm/config"
	"github.com/sartorproj/goqtm/qtm"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Logger}
	var configPath, level string

	root := &cobra.Command{
		Use:           "qtm",
		Short:         "Quantity theory of money on OECD data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			zerolog.SetGlobalLevel(lvl)
			a.logger = log.Logger

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug().Str("config", configPath).Str("preprocess", cfg.Paths.Preprocess).Msg("configuration loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (defaults built in)")
	root.PersistentFlags().StringVar(&level, "log-level", "info", "Log level (debug|info|warn|error)")

	root.AddCommand(
		newPreprocessCmd(a),
		newSummaryCmd(a),
		newQuantilesCmd(a),
		newBarroCmd(a),
	)
	return root
}

// loadDataset reads the derived tables of an aggregate using the configured
// exclusions.
func (a *app) loadDataset(aggregate string) (*qtm.Dataset, error) {
	opts, err := a.cfg.LoadOptions(a.logger)
	if err != nil {
		return nil, err
	}
	return qtm.Load(a.cfg.Paths.Preprocess, aggregate, opts)
}
