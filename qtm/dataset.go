package qtm

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sartorproj/goqtm/panel"
)

// DerivedPaths are the four files written by the preprocessing pipeline
// for one monetary aggregate.
type DerivedPaths struct {
	Annual     string
	AnnualReg  string
	Monthly    string
	MonthlyReg string
}

// FramePath returns the path of the change frame of an aggregate at a
// frequency, e.g. "<folder>/m1-cpi_a.csv".
func FramePath(folder, aggregate string, freq panel.Frequency) string {
	return filepath.Join(folder, fmt.Sprintf("%s-cpi_%s.csv", strings.ToLower(aggregate), freq.Suffix()))
}

// RegressionPath returns the path of the regression table of an aggregate
// at a frequency, e.g. "<folder>/m1-cpi_a_reg.csv".
func RegressionPath(folder, aggregate string, freq panel.Frequency) string {
	return filepath.Join(folder, fmt.Sprintf("%s-cpi_%s_reg.csv", strings.ToLower(aggregate), freq.Suffix()))
}

// Paths returns the derived file paths of an aggregate.
func Paths(folder, aggregate string) DerivedPaths {
	return DerivedPaths{
		Annual:     FramePath(folder, aggregate, panel.Annual),
		AnnualReg:  RegressionPath(folder, aggregate, panel.Annual),
		Monthly:    FramePath(folder, aggregate, panel.Monthly),
		MonthlyReg: RegressionPath(folder, aggregate, panel.Monthly),
	}
}

// LoadOptions control how derived tables are read back.
type LoadOptions struct {
	// Exclusions are removed from the corrected annual and monthly frames.
	Exclusions []Exclusion
	// DropCountries are aggregate pseudo-countries removed from every table.
	DropCountries []string
	Logger        zerolog.Logger
}

// DefaultLoadOptions returns the built-in corrections and drops the OECD
// aggregates.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Exclusions:    DefaultExclusions(),
		DropCountries: []string{"OECD", "OECDE"},
		Logger:        zerolog.Nop(),
	}
}

// Tables are the derived tables of one monetary aggregate.
type Tables struct {
	Aggregate string

	AnnualFull *panel.Frame // as persisted
	Annual     *panel.Frame // with exclusions applied
	AnnualReg  []Regression

	MonthlyFull *panel.Frame
	Monthly     *panel.Frame
	MonthlyReg  []Regression

	MaxInflation []MaxInflation // from Annual
}

// LoadTables reads the four derived files of an aggregate from folder,
// applies the exclusions and computes the max-inflation summary.
func LoadTables(folder, aggregate string, opts LoadOptions) (*Tables, error) {
	paths := Paths(folder, aggregate)
	log := opts.Logger.With().Str("aggregate", aggregate).Logger()

	t := &Tables{Aggregate: aggregate}

	annual, err := panel.ReadFrameFile(paths.Annual)
	if err != nil {
		return nil, fmt.Errorf("read annual frame: %w", err)
	}
	t.AnnualFull = DropCountries(annual, opts.DropCountries)
	t.Annual = ApplyExclusions(t.AnnualFull, panel.Annual, opts.Exclusions)
	log.Debug().
		Int("rows", t.AnnualFull.Len()).
		Int("excluded", t.AnnualFull.Len()-t.Annual.Len()).
		Msg("loaded annual frame")

	if t.AnnualReg, err = readRegressions(paths.AnnualReg, opts.DropCountries); err != nil {
		return nil, fmt.Errorf("read annual regressions: %w", err)
	}

	monthly, err := panel.ReadFrameFile(paths.Monthly)
	if err != nil {
		return nil, fmt.Errorf("read monthly frame: %w", err)
	}
	t.MonthlyFull = DropCountries(monthly, opts.DropCountries)
	t.Monthly = ApplyExclusions(t.MonthlyFull, panel.Monthly, opts.Exclusions)
	log.Debug().
		Int("rows", t.MonthlyFull.Len()).
		Int("excluded", t.MonthlyFull.Len()-t.Monthly.Len()).
		Msg("loaded monthly frame")

	if t.MonthlyReg, err = readRegressions(paths.MonthlyReg, opts.DropCountries); err != nil {
		return nil, fmt.Errorf("read monthly regressions: %w", err)
	}

	if t.MaxInflation, err = MaxInflationSummary(t.Annual); err != nil {
		return nil, err
	}
	return t, nil
}

func readRegressions(path string, drop []string) ([]Regression, error) {
	regs, err := ReadRegressionsFile(path)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(regs, func(r Regression) bool {
		return slices.Contains(drop, r.Country)
	}), nil
}

// Dataset gives read access to the tables of one aggregate and builds the
// data behind the standard charts.
type Dataset struct {
	tables *Tables
	log    zerolog.Logger
}

// NewDataset wraps loaded tables.
func NewDataset(t *Tables, log zerolog.Logger) *Dataset {
	return &Dataset{tables: t, log: log}
}

// Load reads the tables of an aggregate and wraps them in a Dataset.
func Load(folder, aggregate string, opts LoadOptions) (*Dataset, error) {
	t, err := LoadTables(folder, aggregate, opts)
	if err != nil {
		return nil, err
	}
	return NewDataset(t, opts.Logger), nil
}

// Aggregate returns the monetary aggregate label, e.g. "M1".
func (d *Dataset) Aggregate() string { return d.tables.Aggregate }

// MoneyColumn returns the money change column, e.g. "c_m1".
func (d *Dataset) MoneyColumn() string { return ChangeColumn(d.tables.Aggregate) }

// Annual returns the corrected annual frame.
func (d *Dataset) Annual() *panel.Frame { return d.tables.Annual }

// AnnualFull returns the annual frame without exclusions.
func (d *Dataset) AnnualFull() *panel.Frame { return d.tables.AnnualFull }

// Monthly returns the corrected monthly frame.
func (d *Dataset) Monthly() *panel.Frame { return d.tables.Monthly }

// MonthlyFull returns the monthly frame without exclusions.
func (d *Dataset) MonthlyFull() *panel.Frame { return d.tables.MonthlyFull }

// AnnualRegressions returns the persisted annual regressions.
func (d *Dataset) AnnualRegressions() []Regression { return slices.Clone(d.tables.AnnualReg) }

// MonthlyRegressions returns the persisted monthly regressions.
func (d *Dataset) MonthlyRegressions() []Regression { return slices.Clone(d.tables.MonthlyReg) }

// MaxInflation returns the max-inflation summary, highest peak first.
func (d *Dataset) MaxInflation() []MaxInflation { return slices.Clone(d.tables.MaxInflation) }

// QuantileSubset returns the countries in max-inflation bucket q, highest
// peak first.
func (d *Dataset) QuantileSubset(q int) []string {
	var out []string
	for _, m := range d.tables.MaxInflation {
		if m.Bucket == q {
			out = append(out, m.Country)
		}
	}
	return out
}

// ChangeSummary returns the long-run money and CPI growth per country.
func (d *Dataset) ChangeSummary() ([]ChangeSummaryRow, error) {
	return ChangeSummary(d.tables.Annual, strings.ToUpper(d.tables.Aggregate))
}

// RankBy selects which variable's category starts a trajectory.
type RankBy int

const (
	// RankByMoney tracks inflation categories after money-growth categories.
	RankByMoney RankBy = iota
	// RankByCPI tracks money-growth categories after inflation categories.
	RankByCPI
)

// QuantileTS ranks the annual frame per country into numQ categories and
// builds numY-long forward trajectories.
func (d *Dataset) QuantileTS(numQ, numY int, by RankBy) (*TrajectoryPanel, error) {
	cause, effect := d.MoneyColumn(), CPIChangeColumn
	if by == RankByCPI {
		cause, effect = effect, cause
	}

	q, skipped, err := ToQuantileFrame(d.tables.Annual, cause, effect, numQ)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		d.log.Debug().Strs("countries", skipped).Int("num_q", numQ).Msg("too few observations to rank")
	}
	return QuantileTSPanel(q, cause, effect, numY)
}

// QuantileTSPersistence ranks trajectories by how often a top-category
// start stays in the top categories. The threshold is
// (1 - thresholdFrac) * maxCategory - 1.
func (d *Dataset) QuantileTSPersistence(thresholdFrac float64, numQ, numY int, by RankBy) ([]CountryPersistence, error) {
	p, err := d.QuantileTS(numQ, numY, by)
	if err != nil {
		return nil, err
	}
	threshold := (1-thresholdFrac)*p.Max() - 1
	return MeanPersistence(QuantileTSSummary(p, threshold)), nil
}
