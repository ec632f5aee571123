package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goqtm/qtm"
)

var testCountries = []string{"AAA", "BBB", "CCC", "DDD"}

// writeOECD writes a source file in which country j grows money by
// (j+1)*t percent in period t and prices by the same rate plus an
// alternating disturbance, so every country has a different fit.
func writeOECD(t *testing.T, path string, cpi bool) {
	t.Helper()
	noise := []float64{0, 1, 2, 4}

	var b strings.Builder
	b.WriteString("LOCATION,SUBJECT,MEASURE,FREQUENCY,TIME,Value\n")
	for j, c := range testCountries {
		level := 100.0
		for p := 0; p < 6; p++ {
			if p > 0 {
				rate := float64((j + 1) * p)
				if cpi {
					sign := 1.0
					if p%2 == 0 {
						sign = -1
					}
					rate += sign * noise[j]
				}
				level *= 1 + rate/100
			}
			fmt.Fprintf(&b, "%s,TOT,IDX2015,A,%d,%g\n", c, 2000+p, level)
			fmt.Fprintf(&b, "%s,TOT,IDX2015,M,2000-%02d,%g\n", c, p+1, level)
		}
		if cpi {
			fmt.Fprintf(&b, "%s,ENRG,IDX2015,A,2001,1\n", c)
		}
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}

const barroCSV = `Country,Inflation rate,Growth rate of currency,Growth rate of real currency,Growth rate of real GDP,1980-2000 Inflation rate
Brazil,0.7,0.72,0.02,0.04,0.9
Chile,0.2,0.22,0.03,0.05,0.15
Japan,0.02,0.05,0.03,0.025,0.01
Switzerland,0.03,0.05,0.02,0.02,0.025
`

func setup(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	writeOECD(t, filepath.Join(dir, "cpi.csv"), true)
	writeOECD(t, filepath.Join(dir, "m1.csv"), false)
	writeOECD(t, filepath.Join(dir, "m3.csv"), false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "barro.csv"), []byte(barroCSV), 0o644))

	configPath = filepath.Join(dir, "qtm.yaml")
	cfg := fmt.Sprintf(`paths:
  cpi: %[1]s/cpi.csv
  m1: %[1]s/m1.csv
  m3: %[1]s/m3.csv
  barro: %[1]s/barro.csv
  preprocess: %[1]s/out
`, dir)
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))
	return dir, configPath
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestPreprocessWritesDerivedFiles(t *testing.T) {
	dir, cfg := setup(t)
	run(t, "--config", cfg, "--log-level", "warn", "preprocess")

	for _, agg := range []string{"M1", "M3"} {
		p := qtm.Paths(filepath.Join(dir, "out"), agg)
		for _, path := range []string{p.Annual, p.AnnualReg, p.Monthly, p.MonthlyReg} {
			assert.FileExists(t, path)
		}
	}

	regs, err := qtm.ReadRegressionsFile(qtm.Paths(filepath.Join(dir, "out"), "M1").AnnualReg)
	require.NoError(t, err)
	require.Len(t, regs, 4)
	assert.Equal(t, "AAA", regs[0].Country)
	assert.InDelta(t, 1.0, regs[0].RSquared, 1e-9)
	assert.Equal(t, 3, regs[0].R2Cat)
	assert.Equal(t, "DDD", regs[3].Country)
}

func TestSummaryAndQuantiles(t *testing.T) {
	dir, cfg := setup(t)
	run(t, "--config", cfg, "--log-level", "warn", "preprocess")

	plot := filepath.Join(dir, "summary.png")
	js := filepath.Join(dir, "summary.json")
	out := run(t, "--config", cfg, "--log-level", "warn", "summary", "--aggregate", "M1", "--plot", plot, "--json", js)
	for _, c := range testCountries {
		assert.Contains(t, out, c)
	}
	assert.FileExists(t, plot)
	assert.FileExists(t, js)

	out = run(t, "--config", cfg, "--log-level", "warn", "quantiles", "--aggregate", "M3", "--num-q", "2", "--num-y", "2", "--by", "cpi")
	assert.Contains(t, out, "persistence")
}

func TestQuantilesRejectsBadFlags(t *testing.T) {
	_, cfg := setup(t)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfg, "quantiles", "--by", "gdp"})
	assert.Error(t, root.Execute())
}

func TestBarro(t *testing.T) {
	dir, cfg := setup(t)
	plot := filepath.Join(dir, "barro.svg")
	residuals := filepath.Join(dir, "residuals.png")

	out := run(t, "--config", cfg, "barro", "--plot", plot, "--residuals", residuals)
	assert.Contains(t, out, "c_cpi_rate on c_m1_rate")
	assert.FileExists(t, plot)
	assert.FileExists(t, residuals)
}

func TestParseRankBy(t *testing.T) {
	by, err := parseRankBy("cpi")
	require.NoError(t, err)
	assert.Equal(t, qtm.RankByCPI, by)

	_, err = parseRankBy("")
	assert.Error(t, err)
}
