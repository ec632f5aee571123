// Package timeseries provides the single-entity time series used for
// per-country operations.
//
// A Series holds one country's observations of one variable in time order.
// Panel tables hand out Series views for a (country, column) pair and the
// analysis code works on those.
//
// # Creating a Series
//
//	s, err := timeseries.New("CPI", timestamps, values)
//
// # Transformations
//
//	pct := s.PctChange() // period-over-period change in percent
//	ahead := s.Lead(2)   // value two observations later, NaN past the end
//
// # Summary
//
//	years := s.YearSpan()
//	peak := s.Max() // ignores NaN
package timeseries
