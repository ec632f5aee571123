package qtm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/stats"
)

// R2Buckets is the number of equal-frequency buckets of the R² column.
const R2Buckets = 4

// Regression is the fit of inflation on money growth for one country.
type Regression struct {
	Country  string
	RSquared float64
	Slope    float64
	R2Cat    int // 0 (worst fit) .. R2Buckets-1 (best fit)
}

// CountryFit is the outcome of fitting one country: either a Fit, or Err
// explaining why the country has no usable regression.
type CountryFit struct {
	Country string
	Fit     stats.Fit
	Err     error
}

// OK reports whether the fit succeeded.
func (c CountryFit) OK() bool {
	return c.Err == nil
}

// FitByCountry regresses CPIChangeColumn on xColumn separately for every
// country of the frame, in row order. Countries with too little data are
// returned with Err set.
func FitByCountry(f *panel.Frame, xColumn string) ([]CountryFit, error) {
	for _, col := range []string{xColumn, CPIChangeColumn} {
		if !f.Has(col) {
			return nil, fmt.Errorf("%w: %s", panel.ErrMissingColumn, col)
		}
	}

	var fits []CountryFit
	for _, g := range f.Groups() {
		x, err := f.Series(g.Country, xColumn)
		if err != nil {
			return nil, err
		}
		y, err := f.Series(g.Country, CPIChangeColumn)
		if err != nil {
			return nil, err
		}

		fit, err := stats.OLS(x.Values, y.Values)
		fits = append(fits, CountryFit{Country: g.Country, Fit: fit, Err: err})
	}
	return fits, nil
}

// RegressionSet holds the per-country regressions of one change frame.
type RegressionSet struct {
	// Results are sorted by R² descending.
	Results []Regression
	// Skipped lists the countries without enough data to fit.
	Skipped []CountryFit
}

// MoneyCPIRegressions fits one regression per country and buckets the
// countries into R2Buckets quartiles of fit quality. Quartiles are taken
// over the rank of R², so equal R² values (every two-row country fits
// perfectly) are spread over adjacent buckets in R²-descending, then row,
// order instead of failing.
func MoneyCPIRegressions(f *panel.Frame, xColumn string) (*RegressionSet, error) {
	fits, err := FitByCountry(f, xColumn)
	if err != nil {
		return nil, err
	}

	set := &RegressionSet{}
	for _, cf := range fits {
		if !cf.OK() {
			if !errors.Is(cf.Err, stats.ErrInsufficientData) && !errors.Is(cf.Err, stats.ErrDegenerate) {
				return nil, fmt.Errorf("%s: %w", cf.Country, cf.Err)
			}
			set.Skipped = append(set.Skipped, cf)
			continue
		}
		set.Results = append(set.Results, Regression{
			Country:  cf.Country,
			RSquared: cf.Fit.RSquared,
			Slope:    cf.Fit.Slope,
		})
	}

	sort.SliceStable(set.Results, func(i, j int) bool {
		return set.Results[i].RSquared > set.Results[j].RSquared
	})

	if len(set.Results) == 0 {
		return set, nil
	}

	r2 := make([]float64, len(set.Results))
	for i, r := range set.Results {
		r2[i] = r.RSquared
	}
	cats, err := stats.QCutRank(r2, R2Buckets)
	if err != nil {
		return nil, fmt.Errorf("bucket R²: %w", err)
	}
	for i := range set.Results {
		set.Results[i].R2Cat = cats[i]
	}

	return set, nil
}
