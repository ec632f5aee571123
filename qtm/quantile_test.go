package qtm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goqtm/panel"
)

func trajectoryFrame(t *testing.T) *panel.Frame {
	t.Helper()
	return buildFrame(t, []string{"c_m1", CPIChangeColumn},
		obs{"AAA", year(2001), v(1, 10)},
		obs{"AAA", year(2002), v(2, 20)},
		obs{"AAA", year(2003), v(3, 30)},
		obs{"AAA", year(2004), v(4, 40)},
		obs{"BBB", year(2001), v(5, 1)},
		obs{"BBB", year(2002), v(5, 2)},
		obs{"BBB", year(2003), v(5, 3)},
	)
}

func TestToLocQuantileFrame(t *testing.T) {
	aaa, ok := trajectoryFrame(t).Country("AAA")
	require.True(t, ok)

	q, err := ToLocQuantileFrame(aaa, "c_m1", CPIChangeColumn, 2)
	require.NoError(t, err)

	cause, err := q.Column("c_m1")
	require.NoError(t, err)
	effect, err := q.Column(CPIChangeColumn)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2}, cause)
	assert.Equal(t, []float64{1, 1, 2, 2}, effect)
	assert.Equal(t, aaa.Index(), q.Index())
}

func TestToQuantileFrameSkipsUnrankableCountries(t *testing.T) {
	q, skipped, err := ToQuantileFrame(trajectoryFrame(t), "c_m1", CPIChangeColumn, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"BBB"}, skipped)
	assert.Equal(t, []string{"AAA"}, q.Countries())
	assert.Equal(t, 4, q.Len())
}

func TestToQuantileFrameMissingColumn(t *testing.T) {
	_, _, err := ToQuantileFrame(trajectoryFrame(t), "c_m3", CPIChangeColumn, 2)
	assert.ErrorIs(t, err, panel.ErrMissingColumn)
}

func TestQuantileTSPanel(t *testing.T) {
	q, _, err := ToQuantileFrame(trajectoryFrame(t), "c_m1", CPIChangeColumn, 2)
	require.NoError(t, err)

	p, err := QuantileTSPanel(q, "c_m1", CPIChangeColumn, 3)
	require.NoError(t, err)

	require.Len(t, p.Rows, 4)
	assert.Equal(t, 3, p.Period)
	assert.Equal(t, []string{"AAA"}, p.Countries())

	first := p.Rows[0]
	assert.Equal(t, year(2001), first.Time)
	assert.Equal(t, 1, first.Category)
	assert.Equal(t, []float64{1, 1, 2}, first.Window)

	third := p.Rows[2]
	assert.Equal(t, 2, third.Category)
	assert.Equal(t, []float64{2, 2}, third.Window[:2])
	assert.True(t, math.IsNaN(third.Window[2]))

	last := p.Rows[3]
	assert.Equal(t, 2.0, last.Window[0])
	assert.True(t, math.IsNaN(last.Window[1]))
	assert.True(t, math.IsNaN(last.Window[2]))

	assert.Equal(t, 2.0, p.Max())
}

func TestQuantileTSPanelDoesNotCrossCountries(t *testing.T) {
	f := buildFrame(t, []string{"cat", "eff"},
		obs{"AAA", year(2001), v(1, 1)},
		obs{"BBB", year(2001), v(2, 9)},
	)

	p, err := QuantileTSPanel(f, "cat", "eff", 2)
	require.NoError(t, err)

	require.Len(t, p.Rows, 2)
	assert.Equal(t, 1.0, p.Rows[0].Window[0])
	assert.True(t, math.IsNaN(p.Rows[0].Window[1]))
}

func TestQuantileTSPanelInvalidPeriod(t *testing.T) {
	_, err := QuantileTSPanel(trajectoryFrame(t), "c_m1", CPIChangeColumn, 0)
	assert.Error(t, err)
}

func TestQuantileTSSummary(t *testing.T) {
	q, _, err := ToQuantileFrame(trajectoryFrame(t), "c_m1", CPIChangeColumn, 2)
	require.NoError(t, err)
	p, err := QuantileTSPanel(q, "c_m1", CPIChangeColumn, 3)
	require.NoError(t, err)

	rows := QuantileTSSummary(p, 1.5)
	require.Len(t, rows, 2)
	assert.Equal(t, year(2003), rows[0].Time)
	assert.InDelta(t, 2.0/3, rows[0].Fraction, 1e-12)
	assert.Equal(t, year(2004), rows[1].Time)
	assert.InDelta(t, 1.0/3, rows[1].Fraction, 1e-12)

	mean := MeanPersistence(rows)
	require.Len(t, mean, 1)
	assert.Equal(t, "AAA", mean[0].Country)
	assert.InDelta(t, 0.5, mean[0].Mean, 1e-12)
	assert.Equal(t, 2, mean[0].Starts)
}

func TestMeanPersistenceOrder(t *testing.T) {
	rows := []Persistence{
		{Country: "AAA", Fraction: 0.2},
		{Country: "BBB", Fraction: 1},
		{Country: "AAA", Fraction: 0.4},
		{Country: "BBB", Fraction: 0.5},
	}

	got := MeanPersistence(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "BBB", got[0].Country)
	assert.InDelta(t, 0.75, got[0].Mean, 1e-12)
	assert.Equal(t, "AAA", got[1].Country)
	assert.InDelta(t, 0.3, got[1].Mean, 1e-12)
}
