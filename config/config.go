package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goqtm/panel"
	"github.com/sartorproj/goqtm/qtm"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Paths locates the raw inputs and the derived output folder.
type Paths struct {
	CPI        string `yaml:"cpi"`
	M1         string `yaml:"m1"`
	M3         string `yaml:"m3"`
	Barro      string `yaml:"barro"`
	Preprocess string `yaml:"preprocess"` // folder of the derived frames
}

// CPIFilter selects the headline index from the CPI export.
type CPIFilter struct {
	Subject string `yaml:"subject"`
	Measure string `yaml:"measure"`
}

// Exclusion is a row-drop correction as written in YAML. Dates are
// "YYYY-MM-DD"; an empty bound is open.
type Exclusion struct {
	Country   string `yaml:"country"`
	Frequency string `yaml:"frequency"`
	From      string `yaml:"from,omitempty"`
	To        string `yaml:"to,omitempty"`
}

// Config is the complete configuration.
type Config struct {
	Paths         Paths       `yaml:"paths"`
	CPIFilter     CPIFilter   `yaml:"cpi_filter"`
	DropLocations []string    `yaml:"drop_locations"`
	Exclusions    []Exclusion `yaml:"exclusions"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Paths: Paths{
			CPI:        "data/oecd/cpi.csv",
			M1:         "data/oecd/m1.csv",
			M3:         "data/oecd/m3.csv",
			Barro:      "data/barro/barro-data-set.csv",
			Preprocess: "data/preprocess",
		},
		CPIFilter: CPIFilter{
			Subject: "TOT",
			Measure: "IDX2015",
		},
		DropLocations: []string{"OECD", "OECDE"},
		Exclusions: []Exclusion{
			{Country: "USA", Frequency: "A", From: "2020-01-01", To: "2020-12-31"},
			{Country: "USA", Frequency: "M", From: "2020-05-01", To: "2020-05-31"},
			{Country: "ISL", Frequency: "A", To: "1976-12-31"},
			{Country: "ISL", Frequency: "M", To: "1976-12-31"},
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every exclusion can be converted.
func (c *Config) Validate() error {
	_, err := c.QTMExclusions()
	return err
}

// QTMExclusions converts the configured exclusions.
func (c *Config) QTMExclusions() ([]qtm.Exclusion, error) {
	out := make([]qtm.Exclusion, 0, len(c.Exclusions))
	for i, e := range c.Exclusions {
		if e.Country == "" {
			return nil, fmt.Errorf("%w: exclusion %d has no country", ErrInvalid, i)
		}
		freq, err := panel.ParseFrequency(e.Frequency)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusion %d: %v", ErrInvalid, i, err)
		}
		from, err := parseBound(e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusion %d from: %v", ErrInvalid, i, err)
		}
		to, err := parseBound(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusion %d to: %v", ErrInvalid, i, err)
		}
		if !from.IsZero() && !to.IsZero() && to.Before(from) {
			return nil, fmt.Errorf("%w: exclusion %d ends before it starts", ErrInvalid, i)
		}
		out = append(out, qtm.Exclusion{Country: e.Country, Frequency: freq, From: from, To: to})
	}
	return out, nil
}

// LoadOptions returns the dataset options of this configuration.
func (c *Config) LoadOptions(logger zerolog.Logger) (qtm.LoadOptions, error) {
	excl, err := c.QTMExclusions()
	if err != nil {
		return qtm.LoadOptions{}, err
	}
	return qtm.LoadOptions{
		Exclusions:    excl,
		DropCountries: c.DropLocations,
		Logger:        logger,
	}, nil
}

// AggregatePath returns the input path of a monetary aggregate.
func (c *Config) AggregatePath(aggregate string) (string, error) {
	switch aggregate {
	case "M1", "m1":
		return c.Paths.M1, nil
	case "M3", "m3":
		return c.Paths.M3, nil
	}
	return "", fmt.Errorf("%w: unknown aggregate %q", ErrInvalid, aggregate)
}

func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(panel.DateLayout, s)
}
