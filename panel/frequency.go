package panel

import (
	"fmt"
	"strings"
)

// Frequency is the sampling frequency code used by OECD sources.
type Frequency string

const (
	Annual    Frequency = "A"
	Quarterly Frequency = "Q"
	Monthly   Frequency = "M"
)

// periodsPerYear drives annualization of per-period change rates.
var periodsPerYear = map[Frequency]int{
	Annual:    1,
	Quarterly: 4,
	Monthly:   12,
}

// ParseFrequency parses a frequency code ("A", "Q" or "M", any case).
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := periodsPerYear[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	return f, nil
}

// PeriodsPerYear returns the number of observations per year, or 0 for an
// unknown frequency.
func (f Frequency) PeriodsPerYear() int {
	return periodsPerYear[f]
}

// Annualized reports whether change rates at this frequency need to be
// compounded up to a yearly rate.
func (f Frequency) Annualized() bool {
	return f.PeriodsPerYear() > 1
}

// Suffix is the lower-case code used in derived file names.
func (f Frequency) Suffix() string {
	return strings.ToLower(string(f))
}
