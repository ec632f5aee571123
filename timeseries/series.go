package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when timestamps and values differ in length.
var ErrLengthMismatch = errors.New("timestamps and values must have the same length")

// Series represents a time series with timestamps and values.
// Missing observations are stored as NaN.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a named time series with explicit timestamps.
func New(name string, timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, ErrLengthMismatch
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the non-missing values.
func (s *Series) Mean() float64 {
	valid := s.valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return floats.Sum(valid) / float64(len(valid))
}

// Max returns the maximum non-missing value in the series.
func (s *Series) Max() float64 {
	valid := s.valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return floats.Max(valid)
}

// PctChange returns the percentage change from the previous observation:
// 100 * (v[t] - v[t-1]) / v[t-1]. The first value is NaN.
func (s *Series) PctChange() *Series {
	result := make([]float64, len(s.Values))
	for i := range result {
		if i == 0 {
			result[i] = math.NaN()
			continue
		}
		prev := s.Values[i-1]
		result[i] = 100 * (s.Values[i] - prev) / prev
	}

	return &Series{
		Timestamps: s.copyTimestamps(),
		Values:     result,
		Name:       s.Name,
	}
}

// Lead returns the series shifted k observations back in time, so that
// position i holds the value observed at i+k. Positions past the end are NaN.
func (s *Series) Lead(k int) *Series {
	n := len(s.Values)
	result := make([]float64, n)
	for i := range result {
		j := i + k
		if j < 0 || j >= n {
			result[i] = math.NaN()
			continue
		}
		result[i] = s.Values[j]
	}

	return &Series{
		Timestamps: s.copyTimestamps(),
		Values:     result,
		Name:       s.Name,
	}
}

// YearSpan returns the difference between the calendar years of the last
// and first timestamps.
func (s *Series) YearSpan() int {
	if len(s.Timestamps) == 0 {
		return 0
	}
	return s.Timestamps[len(s.Timestamps)-1].Year() - s.Timestamps[0].Year()
}

func (s *Series) copyTimestamps() []time.Time {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)
	return timestamps
}

// valid returns the non-NaN values.
func (s *Series) valid() []float64 {
	valid := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	return valid
}
