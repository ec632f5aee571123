package calc

import (
	"math"

	"github.com/sartorproj/goqtm/timeseries"
)

// RateToEndValue returns the value of one unit grown at rate for periods
// periods with discrete compounding: (1 + rate)^periods.
func RateToEndValue(rate, periods float64) float64 {
	return math.Pow(rate+1, periods)
}

// EndValueToRate is the inverse of RateToEndValue: endValue^(1/periods) - 1.
func EndValueToRate(endValue, periods float64) float64 {
	return math.Pow(endValue, 1/periods) - 1
}

// RateToEndValueContinuous returns exp(rate * periods).
func RateToEndValueContinuous(rate, periods float64) float64 {
	return math.Exp(rate * periods)
}

// EndValueToRateContinuous returns ln(endValue) / periods.
func EndValueToRateContinuous(endValue, periods float64) float64 {
	return math.Log(endValue) / periods
}

// PctRateToYearly converts a per-period percentage rate into the equivalent
// compounded annual percentage rate.
func PctRateToYearly(ratePct float64, periodsPerYear int) float64 {
	return (RateToEndValue(ratePct/100, float64(periodsPerYear)) - 1) * 100
}

// PctRatesToYearly applies PctRateToYearly element-wise and returns a new slice.
func PctRatesToYearly(ratesPct []float64, periodsPerYear int) []float64 {
	result := make([]float64, len(ratesPct))
	for i, r := range ratesPct {
		result[i] = PctRateToYearly(r, periodsPerYear)
	}
	return result
}

// RatesToEndValuesContinuous applies RateToEndValueContinuous element-wise.
func RatesToEndValuesContinuous(rates []float64, periods float64) []float64 {
	result := make([]float64, len(rates))
	for i, r := range rates {
		result[i] = RateToEndValueContinuous(r, periods)
	}
	return result
}

// ChangeRate returns the number of whole years between the first and last
// observation of a single-country series and the average annual growth rate
// of its values over that span, in percent.
//
// Spans under one year return (0, 0).
func ChangeRate(series *timeseries.Series) (years int, ratePct float64) {
	n := series.Len()
	if n == 0 || len(series.Timestamps) != n {
		return 0, 0
	}

	years = series.YearSpan()
	if years < 1 {
		return 0, 0
	}

	growth := series.Values[n-1] / series.Values[0]
	return years, EndValueToRate(growth, float64(years)) * 100
}
