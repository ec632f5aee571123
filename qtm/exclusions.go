package qtm

import (
	"time"

	"github.com/sartorproj/goqtm/panel"
)

// Exclusion removes a country's rows in a closed date range from the
// corrected tables of a Dataset. A zero From starts at the country's first
// observation; a zero To runs to its last.
type Exclusion struct {
	Country   string
	Frequency panel.Frequency
	From      time.Time
	To        time.Time
}

// Matches reports whether the exclusion removes key k from a table of the
// given frequency.
func (e Exclusion) Matches(k panel.Key, freq panel.Frequency) bool {
	if e.Frequency != freq || e.Country != k.Country {
		return false
	}
	if !e.From.IsZero() && k.Time.Before(e.From) {
		return false
	}
	if !e.To.IsZero() && k.Time.After(e.To) {
		return false
	}
	return true
}

// DefaultExclusions are the corrections for the OECD vintage the analysis
// was built on: the partial US 2020 figures, and Icelandic data through
// 1976.
func DefaultExclusions() []Exclusion {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []Exclusion{
		{Country: "USA", Frequency: panel.Annual, From: day(2020, time.January, 1), To: day(2020, time.December, 31)},
		{Country: "USA", Frequency: panel.Monthly, From: day(2020, time.May, 1), To: day(2020, time.May, 31)},
		{Country: "ISL", Frequency: panel.Annual, To: day(1976, time.December, 31)},
		{Country: "ISL", Frequency: panel.Monthly, To: day(1976, time.December, 31)},
	}
}

// ApplyExclusions returns the rows of f not matched by any exclusion.
func ApplyExclusions(f *panel.Frame, freq panel.Frequency, exclusions []Exclusion) *panel.Frame {
	return f.Filter(func(_ int, k panel.Key) bool {
		for _, e := range exclusions {
			if e.Matches(k, freq) {
				return false
			}
		}
		return true
	})
}

// DropCountries returns the rows of f whose country is not listed.
func DropCountries(f *panel.Frame, countries []string) *panel.Frame {
	drop := make(map[string]bool, len(countries))
	for _, c := range countries {
		drop[c] = true
	}
	return f.Filter(func(_ int, k panel.Key) bool { return !drop[k.Country] })
}
