package qtm

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/stats"
	"github.com/sartorproj/goqtm/timeseries"
)

// ToLocQuantileFrame bins the cause and effect columns of a single
// country's rows into numQ equal-frequency categories labelled 1..numQ.
func ToLocQuantileFrame(country *panel.Frame, causeColumn, effectColumn string, numQ int) (*panel.Frame, error) {
	columns := []string{causeColumn, effectColumn}
	data := make([][]float64, len(columns))
	for c, name := range columns {
		values, err := country.Column(name)
		if err != nil {
			return nil, err
		}
		buckets, err := stats.QCut(values, numQ)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		labels := make([]float64, len(buckets))
		for i, b := range buckets {
			if b < 0 {
				labels[i] = math.NaN()
				continue
			}
			labels[i] = float64(b + 1)
		}
		data[c] = labels
	}
	return panel.NewFrame(country.Index(), columns, data)
}

// ToQuantileFrame applies ToLocQuantileFrame to every country separately,
// so each country is ranked against its own history. Countries whose data
// cannot be split into numQ categories are returned in skipped.
func ToQuantileFrame(f *panel.Frame, causeColumn, effectColumn string, numQ int) (q *panel.Frame, skipped []string, err error) {
	var parts []*panel.Frame
	for _, g := range f.Groups() {
		part, err := ToLocQuantileFrame(f.Rows(g.Start, g.End), causeColumn, effectColumn, numQ)
		if errors.Is(err, stats.ErrNonUniqueEdges) || errors.Is(err, stats.ErrInsufficientData) {
			skipped = append(skipped, g.Country)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", g.Country, err)
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		q, err = panel.NewFrame(nil, []string{causeColumn, effectColumn}, [][]float64{{}, {}})
		return q, skipped, err
	}
	q, err = panel.Concat(parts...)
	return q, skipped, err
}

// Trajectory is the forward window starting at one observation.
type Trajectory struct {
	Country  string
	Time     time.Time
	Category int       // category of the cause column at Time, -1 if missing
	Window   []float64 // effect column 0..len-1 observations later, NaN past the end
}

// TrajectoryPanel holds fixed-length forward windows for every observation.
type TrajectoryPanel struct {
	Period int
	Rows   []Trajectory
}

// QuantileTSPanel builds, for every observation, the window of the effect
// column at offsets 0..period-1 within the same country, indexed by the
// observation's country, time and cause category.
func QuantileTSPanel(f *panel.Frame, categoryColumn, effectColumn string, period int) (*TrajectoryPanel, error) {
	if period < 1 {
		return nil, fmt.Errorf("invalid window length %d", period)
	}
	for _, col := range []string{categoryColumn, effectColumn} {
		if !f.Has(col) {
			return nil, fmt.Errorf("%w: %s", panel.ErrMissingColumn, col)
		}
	}

	p := &TrajectoryPanel{Period: period}
	for _, g := range f.Groups() {
		effect, err := f.Series(g.Country, effectColumn)
		if err != nil {
			return nil, err
		}
		leads := make([][]float64, period)
		for k := range leads {
			leads[k] = effect.Lead(k).Values
		}

		for i := 0; i < effect.Len(); i++ {
			window := make([]float64, period)
			for k := range window {
				window[k] = leads[k][i]
			}
			cat := f.Value(g.Start+i, categoryColumn)
			category := -1
			if !math.IsNaN(cat) {
				category = int(cat)
			}
			p.Rows = append(p.Rows, Trajectory{
				Country:  g.Country,
				Time:     effect.Timestamps[i],
				Category: category,
				Window:   window,
			})
		}
	}
	return p, nil
}

// Max returns the largest non-missing window value, or NaN if there is none.
func (p *TrajectoryPanel) Max() float64 {
	var all []float64
	for _, r := range p.Rows {
		for _, v := range r.Window {
			if !math.IsNaN(v) {
				all = append(all, v)
			}
		}
	}
	if len(all) == 0 {
		return math.NaN()
	}
	return floats.Max(all)
}

// Countries returns the distinct countries in row order.
func (p *TrajectoryPanel) Countries() []string {
	var out []string
	for i, r := range p.Rows {
		if i == 0 || r.Country != p.Rows[i-1].Country {
			out = append(out, r.Country)
		}
	}
	return out
}

// Persistence is the share of a trajectory's window above a threshold.
type Persistence struct {
	Country  string
	Time     time.Time
	Category int
	Fraction float64
}

// QuantileTSSummary returns, for every trajectory whose category exceeds
// threshold, the fraction of its window values that also exceed threshold.
// Missing window values count as not exceeding.
func QuantileTSSummary(p *TrajectoryPanel, threshold float64) []Persistence {
	var out []Persistence
	for _, r := range p.Rows {
		if r.Category < 0 || float64(r.Category) <= threshold {
			continue
		}
		above := 0
		for _, v := range r.Window {
			if v > threshold {
				above++
			}
		}
		out = append(out, Persistence{
			Country:  r.Country,
			Time:     r.Time,
			Category: r.Category,
			Fraction: float64(above) / float64(len(r.Window)),
		})
	}
	return out
}

// CountryPersistence is the mean persistence of a country's high-category
// years.
type CountryPersistence struct {
	Country string
	Mean    float64
	Starts  int // number of trajectories averaged
}

// MeanPersistence averages QuantileTSSummary rows per country and sorts the
// countries from most to least persistent.
func MeanPersistence(rows []Persistence) []CountryPersistence {
	var order []string
	byCountry := make(map[string]*timeseries.Series)
	for _, r := range rows {
		s, ok := byCountry[r.Country]
		if !ok {
			s = &timeseries.Series{Name: r.Country}
			byCountry[r.Country] = s
			order = append(order, r.Country)
		}
		s.Timestamps = append(s.Timestamps, r.Time)
		s.Values = append(s.Values, r.Fraction)
	}

	out := make([]CountryPersistence, 0, len(order))
	for _, country := range order {
		s := byCountry[country]
		out = append(out, CountryPersistence{Country: country, Mean: s.Mean(), Starts: s.Len()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	return out
}
