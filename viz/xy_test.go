package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/goqtm/stats"
)

func sampleData() XYData {
	return XYData{
		Labels: []string{"Brazil", "Chile", "Japan", "Switzerland"},
		X:      []float64{0.72, 0.2, 0.05, 0.04},
		Y:      []float64{0.7, 0.18, 0.02, 0.03},
	}
}

func TestXYFigure(t *testing.T) {
	p, fit, err := XYFigure(sampleData(), Options{
		Title:     "Money growth and inflation",
		XLabel:    "currency growth",
		YLabel:    "inflation",
		Highlight: []string{"Brazil", "Japan"},
		Source:    "Barro, Macroeconomics: A Modern Approach, 2008",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, fit.NObs)
	assert.Greater(t, fit.RSquared, 0.99)
	assert.InDelta(t, 1.0, fit.Slope, 0.05)

	lo, hi := Limits(sampleData().X, sampleData().Y)
	assert.Equal(t, lo, p.X.Min)
	assert.Equal(t, hi, p.Y.Max)

	path := filepath.Join(t.TempDir(), "xy.png")
	require.NoError(t, Save(p, path, 6*vg.Inch, 6*vg.Inch))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestXYFigureSVG(t *testing.T) {
	p, _, err := XYFigure(sampleData(), Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "xy.svg")
	require.NoError(t, Save(p, path, 4*vg.Inch, 4*vg.Inch))
	assert.FileExists(t, path)
}

func TestXYFigureLengthMismatch(t *testing.T) {
	d := sampleData()
	d.Y = d.Y[:2]
	_, _, err := XYFigure(d, Options{})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
}

func TestXYFigureTooFewPoints(t *testing.T) {
	_, _, err := XYFigure(XYData{Labels: []string{"A"}, X: []float64{1}, Y: []float64{1}}, Options{})
	assert.ErrorIs(t, err, stats.ErrInsufficientData)
}

func TestResidualFigure(t *testing.T) {
	d := sampleData()
	fit, err := stats.OLS(d.X, d.Y)
	require.NoError(t, err)

	p, err := ResidualFigure(d, fit, Options{Highlight: []string{"Chile"}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "residuals.png")
	require.NoError(t, Save(p, path, 4*vg.Inch, 4*vg.Inch))
}

func TestLimits(t *testing.T) {
	lo, hi := Limits([]float64{-1, 2}, []float64{4, 0})
	assert.InDelta(t, -1.1, lo, 1e-12)
	assert.InDelta(t, 4.4, hi, 1e-12)

	lo, hi = Limits(nil, nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestRegressionLabel(t *testing.T) {
	assert.Equal(t, "regression, r²=0.50 (slope=1.25)", RegressionLabel(stats.Fit{RSquared: 0.5, Slope: 1.25}))
}
