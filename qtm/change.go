package qtm

import (
	"fmt"
	"strings"

	"github.com/sartorproj/goqtm/calc"
	"github.com/sartorproj/goqtm/panel"
)

// CPIChangeColumn is the inflation column of every change frame.
const CPIChangeColumn = "c_cpi"

// ChangeColumn returns the change column name for a level label, e.g.
// "M1" -> "c_m1".
func ChangeColumn(label string) string {
	return "c_" + strings.ToLower(label)
}

// MoneyCPIFrame joins a monetary aggregate and a price index, computes their
// period-over-period percentage changes within each country, annualizes the
// changes for sub-annual frequencies, and drops incomplete rows.
//
// The result has the level columns (named after the two series) followed by
// ChangeColumn(label) and CPIChangeColumn.
func MoneyCPIFrame(money, cpi *panel.Series, label string, freq panel.Frequency) (*panel.Frame, error) {
	periods := freq.PeriodsPerYear()
	if periods == 0 {
		return nil, fmt.Errorf("%w: %q", panel.ErrUnknownFrequency, string(freq))
	}

	levels, err := panel.OuterJoin(money, cpi)
	if err != nil {
		return nil, fmt.Errorf("join %s and %s: %w", money.Name, cpi.Name, err)
	}

	changes := make([][]float64, 2)
	for c, name := range []string{money.Name, cpi.Name} {
		col, err := pctChangeByCountry(levels, name)
		if err != nil {
			return nil, err
		}
		if freq.Annualized() {
			col = calc.PctRatesToYearly(col, periods)
		}
		changes[c] = col
	}

	joined, err := levels.WithColumns([]string{ChangeColumn(label), CPIChangeColumn}, changes)
	if err != nil {
		return nil, err
	}
	return joined.DropNA(), nil
}

// pctChangeByCountry computes percentage changes of a column restarting at
// each country, so the first row of every country is NaN.
func pctChangeByCountry(f *panel.Frame, column string) ([]float64, error) {
	out := make([]float64, 0, f.Len())
	for _, g := range f.Groups() {
		s, err := f.Series(g.Country, column)
		if err != nil {
			return nil, err
		}
		out = append(out, s.PctChange().Values...)
	}
	return out, nil
}
