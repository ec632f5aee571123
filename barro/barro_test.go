package barro

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goqtm/panel"
)

const sample = `Country,Inflation rate,Growth rate of currency,Growth rate of real currency,Growth rate of real GDP,1980-2000 Inflation rate
Brazil,0.7,0.72,0.02,0.04,0.9
Switzerland,0.03,0.05,0.02,0.02,0.025
`

func TestReadFrom(t *testing.T) {
	d, err := ReadFrom(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"Brazil", "Switzerland"}, d.Names())

	ch := d.Countries[1]
	assert.Equal(t, 0.03, ch.CPIRate)
	assert.Equal(t, 0.05, ch.M1Rate)
	assert.Equal(t, 0.02, ch.M1RealRate)
	assert.Equal(t, 0.02, ch.OutputRate)
	assert.InDelta(t, 0.0, ch.VelocityRate, 1e-12)

	assert.InDelta(t, math.Exp(0.03*40), ch.CPI, 1e-9)
	assert.InDelta(t, math.Exp(0.05*40), ch.M1, 1e-9)
	assert.InDelta(t, 1.0, ch.Velocity, 1e-9)
	assert.InDelta(t, ch.M1*ch.Velocity, ch.MV, 1e-9)
	assert.InDelta(t, ch.CPI*ch.Output, ch.PT, 1e-9)
	assert.InDelta(t, 0.05, ch.PTRate, 1e-12)
	assert.InDelta(t, 0.05, ch.MVRate, 1e-12)

	br := d.Countries[0]
	assert.InEpsilon(t, math.Exp(0.7*40), br.CPI, 1e-9)
	assert.InEpsilon(t, math.Exp(0.04*40), br.Output, 1e-9)
	assert.InEpsilon(t, math.Exp((0.7+0.04-0.72)*40), br.Velocity, 1e-9)
}

func TestEquationOfExchangeHolds(t *testing.T) {
	d, err := ReadFrom(strings.NewReader(sample))
	require.NoError(t, err)

	for _, c := range d.Countries {
		assert.InDelta(t, c.MVRate, c.PTRate, 1e-12, c.Name)
		assert.InDelta(t, 1.0, c.MV/c.PT, 1e-9, c.Name)
	}
}

func TestColumn(t *testing.T) {
	d, err := ReadFrom(strings.NewReader(sample))
	require.NoError(t, err)

	x, err := d.Column(M1Rate)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.72, 0.05}, x)

	_, err = d.Column("c_m3_rate")
	assert.ErrorIs(t, err, panel.ErrMissingColumn)
}

func TestReadFromMissingColumn(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("Country,Inflation rate\nBrazil,0.7\n"))
	assert.ErrorIs(t, err, panel.ErrMissingColumn)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barro.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	d, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, d.Countries, 2)

	_, err = Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
