package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goqtm/config"
	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/qtm"
)

var (
	aggregates  = []string{"M1", "M3"}
	frequencies = []panel.Frequency{panel.Annual, panel.Monthly}
)

func newPreprocessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess",
		Short: "Build change frames and regressions from the raw OECD files",
		Long: `Reads the CPI, M1 and M3 exports, computes annualized percentage changes per
country, fits inflation on money growth per country and writes, for each
aggregate and frequency, the change frame and the regression table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return preprocess(a.cfg, a.logger)
		},
	}
}

func preprocess(cfg *config.Config, logger zerolog.Logger) error {
	cpiRecords, err := panel.ReadRecords(cfg.Paths.CPI)
	if err != nil {
		return fmt.Errorf("read CPI: %w", err)
	}
	cpiRecords = panel.FilterRecords(cpiRecords, func(r panel.Record) bool {
		return r.Subject == cfg.CPIFilter.Subject && r.Measure == cfg.CPIFilter.Measure
	})
	logger.Debug().Int("records", len(cpiRecords)).Msg("CPI records after filter")

	if err := os.MkdirAll(cfg.Paths.Preprocess, 0o755); err != nil {
		return err
	}

	for _, agg := range aggregates {
		path, err := cfg.AggregatePath(agg)
		if err != nil {
			return err
		}
		moneyRecords, err := panel.ReadRecords(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", agg, err)
		}
		for _, freq := range frequencies {
			if err := preprocessOne(cfg.Paths.Preprocess, agg, freq, moneyRecords, cpiRecords, logger); err != nil {
				return fmt.Errorf("%s %s: %w", agg, freq, err)
			}
		}
	}
	return nil
}

func preprocessOne(folder, agg string, freq panel.Frequency, moneyRecords, cpiRecords []panel.Record, logger zerolog.Logger) error {
	log := logger.With().Str("aggregate", agg).Str("frequency", string(freq)).Logger()

	money, err := panel.ToSeries(moneyRecords, agg, freq)
	if err != nil {
		return err
	}
	cpi, err := panel.ToSeries(cpiRecords, qtm.CPILevelColumn, freq)
	if err != nil {
		return err
	}

	frame, err := qtm.MoneyCPIFrame(money, cpi, strings.ToLower(agg), freq)
	if err != nil {
		return err
	}
	set, err := qtm.MoneyCPIRegressions(frame, qtm.ChangeColumn(agg))
	if err != nil {
		return err
	}
	for _, s := range set.Skipped {
		log.Debug().Str("country", s.Country).Err(s.Err).Msg("no regression")
	}

	if err := panel.WriteFrameFile(qtm.FramePath(folder, agg, freq), frame); err != nil {
		return err
	}
	if err := qtm.WriteRegressionsFile(qtm.RegressionPath(folder, agg, freq), set.Results); err != nil {
		return err
	}

	log.Info().
		Int("rows", frame.Len()).
		Int("countries", len(frame.Countries())).
		Int("regressions", len(set.Results)).
		Int("skipped", len(set.Skipped)).
		Msg("preprocessed")
	return nil
}
