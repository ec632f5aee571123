package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInsufficientData is returned when there are too few observations.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerate is returned when a regressor or response has no
	// variance, so the fit is not identified.
	ErrDegenerate = errors.New("degenerate data")

	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y must have the same length")
)

// Fit is the result of a simple linear regression y = Intercept + Slope*x.
type Fit struct {
	Intercept float64
	Slope     float64
	RSquared  float64
	NObs      int
}

// Predict returns the fitted value at x.
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// OLS fits y on x by ordinary least squares with an intercept.
// Pairs where either value is NaN or infinite are dropped first.
// At least two observations with non-zero variance in both x and y are
// required.
func OLS(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, ErrLengthMismatch
	}

	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}

	n := len(xs)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: %d observations", ErrInsufficientData, n)
	}
	if stat.Variance(xs, nil) == 0 {
		return Fit{}, fmt.Errorf("%w: constant regressor", ErrDegenerate)
	}
	if stat.Variance(ys, nil) == 0 {
		return Fit{}, fmt.Errorf("%w: constant response", ErrDegenerate)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	return Fit{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  r2,
		NObs:      n,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
