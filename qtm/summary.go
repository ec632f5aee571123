package qtm

import (
	"fmt"
	"sort"

	"github.com/sartorproj/goqtm/calc"
	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/stats"
)

// CPILevelColumn is the price-index level column of every change frame.
const CPILevelColumn = "CPI"

// MaxInflationBuckets is the number of buckets of the max-inflation summary.
const MaxInflationBuckets = 4

// MaxInflation is the highest inflation rate observed for a country.
type MaxInflation struct {
	Country string
	CPI     float64 // max of CPIChangeColumn
	Bucket  int     // 1 (lowest peak) .. MaxInflationBuckets
}

// MaxInflationSummary returns every country's peak inflation, sorted from
// the highest peak down, bucketed into MaxInflationBuckets quantiles of the
// peak's rank. Equal peaks are ranked in row order.
func MaxInflationSummary(f *panel.Frame) ([]MaxInflation, error) {
	var rows []MaxInflation
	for _, g := range f.Groups() {
		s, err := f.Series(g.Country, CPIChangeColumn)
		if err != nil {
			return nil, err
		}
		rows = append(rows, MaxInflation{Country: g.Country, CPI: s.Max()})
	}
	if len(rows) == 0 {
		return rows, nil
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CPI > rows[j].CPI })

	peaks := make([]float64, len(rows))
	for i, r := range rows {
		peaks[i] = r.CPI
	}
	buckets, err := stats.QCutRank(peaks, MaxInflationBuckets)
	if err != nil {
		return nil, fmt.Errorf("bucket max inflation: %w", err)
	}
	for i := range rows {
		rows[i].Bucket = buckets[i] + 1
	}
	return rows, nil
}

// ChangeSummaryRow is the average annual growth of money and prices over a
// country's whole history.
type ChangeSummaryRow struct {
	Country string
	Money   float64 // percent per year
	CPI     float64 // percent per year
	Years   int
}

// ChangeSummary computes, per country, the compounded annual growth rate of
// the money level column and of the CPI level column between the first and
// last observation. Countries spanning less than a year are left out.
func ChangeSummary(f *panel.Frame, levelColumn string) ([]ChangeSummaryRow, error) {
	var rows []ChangeSummaryRow
	for _, g := range f.Groups() {
		money, err := f.Series(g.Country, levelColumn)
		if err != nil {
			return nil, err
		}
		years, moneyRate := calc.ChangeRate(money)
		if years < 1 {
			continue
		}

		cpi, err := f.Series(g.Country, CPILevelColumn)
		if err != nil {
			return nil, err
		}
		_, cpiRate := calc.ChangeRate(cpi)

		rows = append(rows, ChangeSummaryRow{
			Country: g.Country,
			Money:   moneyRate,
			CPI:     cpiRate,
			Years:   years,
		})
	}
	return rows, nil
}

// YearRange is the first and last observation year of a country.
type YearRange struct {
	Country    string
	Start, End int
}

// YearSummary returns every country's observed year range.
func YearSummary(f *panel.Frame) []YearRange {
	groups := f.Groups()
	out := make([]YearRange, len(groups))
	for i, g := range groups {
		out[i] = YearRange{
			Country: g.Country,
			Start:   f.Key(g.Start).Time.Year(),
			End:     f.Key(g.End - 1).Time.Year(),
		}
	}
	return out
}

// FacetLabel returns the "<code> | <start> – <end>" title used for a
// country's panel in faceted charts.
func FacetLabel(f *panel.Frame, country string) (string, error) {
	c, ok := f.Country(country)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	yr := YearSummary(c)[0]
	return fmt.Sprintf("%s | %d – %d", country, yr.Start, yr.End), nil
}
