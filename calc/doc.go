// Package calc converts between growth rates and end values.
//
// Two compounding conventions are supported. Discrete compounding treats a
// rate as applied once per period:
//
//	ev := calc.RateToEndValue(0.1, 2)   // 1.21
//	r := calc.EndValueToRate(1.21, 2)   // 0.1
//
// Continuous compounding treats a rate as an instantaneous growth rate:
//
//	ev := calc.RateToEndValueContinuous(0.05, 40)
//	r := calc.EndValueToRateContinuous(ev, 40)
//
// Percentage rates measured over a sub-annual period (a month, a quarter)
// are annualized with PctRateToYearly:
//
//	yearly := calc.PctRateToYearly(1, 12) // ~12.68
//
// The functions follow floating-point power semantics: invalid inputs yield
// NaN rather than an error.
package calc
