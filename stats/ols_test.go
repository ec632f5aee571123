package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOLSExactLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2 + 0.5*v
	}

	fit, err := OLS(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 0.5, fit.Slope, 1e-12)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-12)
	assert.Equal(t, 5, fit.NObs)
	assert.InDelta(t, 7.0, fit.Predict(10), 1e-12)
}

func TestOLSNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 3, 2, 4}

	fit, err := OLS(x, y)
	require.NoError(t, err)
	// slope = Sxy/Sxx = 4/5, r2 = Sxy^2/(Sxx*Syy) = 16/25
	assert.InDelta(t, 0.8, fit.Slope, 1e-12)
	assert.InDelta(t, 0.5, fit.Intercept, 1e-12)
	assert.InDelta(t, 0.64, fit.RSquared, 1e-12)
}

func TestOLSDropsMissing(t *testing.T) {
	fit, err := OLS([]float64{1, math.NaN(), 2, 3}, []float64{2, 5, 4, math.Inf(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, fit.NObs)
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
}

func TestOLSErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{"empty", nil, nil, ErrInsufficientData},
		{"single", []float64{1}, []float64{2}, ErrInsufficientData},
		{"constant x", []float64{1, 1, 1}, []float64{1, 2, 3}, ErrDegenerate},
		{"constant y", []float64{1, 2, 3}, []float64{4, 4, 4}, ErrDegenerate},
		{"length", []float64{1, 2}, []float64{1}, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OLS(tt.x, tt.y)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
