package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/qtm"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qtm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesBuiltInExclusions(t *testing.T) {
	excl, err := Default().QTMExclusions()
	require.NoError(t, err)
	assert.Equal(t, qtm.DefaultExclusions(), excl)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
paths:
  preprocess: out
cpi_filter:
  measure: IDX2010
drop_locations: [EA19]
exclusions:
  - country: TUR
    frequency: m
    from: "1994-01-01"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Paths.Preprocess)
	assert.Equal(t, "data/oecd/m1.csv", cfg.Paths.M1)
	assert.Equal(t, "TOT", cfg.CPIFilter.Subject)
	assert.Equal(t, "IDX2010", cfg.CPIFilter.Measure)
	assert.Equal(t, []string{"EA19"}, cfg.DropLocations)

	opts, err := cfg.LoadOptions(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"EA19"}, opts.DropCountries)
	assert.Equal(t, []qtm.Exclusion{{
		Country:   "TUR",
		Frequency: panel.Monthly,
		From:      time.Date(1994, time.January, 1, 0, 0, 0, 0, time.UTC),
	}}, opts.Exclusions)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad frequency", "exclusions:\n  - {country: USA, frequency: W}\n"},
		{"bad date", "exclusions:\n  - {country: USA, frequency: A, to: \"2020\"}\n"},
		{"no country", "exclusions:\n  - {frequency: A}\n"},
		{"reversed range", "exclusions:\n  - {country: USA, frequency: A, from: \"2021-01-01\", to: \"2020-01-01\"}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "paths: [\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAggregatePath(t *testing.T) {
	cfg := Default()

	p, err := cfg.AggregatePath("M3")
	require.NoError(t, err)
	assert.Equal(t, cfg.Paths.M3, p)

	_, err = cfg.AggregatePath("M2")
	assert.ErrorIs(t, err, ErrInvalid)
}
