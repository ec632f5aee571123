package barro

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sartorproj/goqtm/calc"
	"github.com/sartorproj/goqtm/panel"
)

// Years is the span the published rates average over.
const Years = 40

// Source column names. The 1980-2000 inflation column is ignored.
const (
	InflationColumn      = "Inflation rate"
	CurrencyGrowthColumn = "Growth rate of currency"
	RealCurrencyColumn   = "Growth rate of real currency"
	RealGDPGrowthColumn  = "Growth rate of real GDP"
)

// Derived column names, as accepted by Dataset.Column.
const (
	CPIRate       = "c_cpi_rate"
	M1Rate        = "c_m1_rate"
	M1RealRate    = "c_m1_real_rate"
	OutputRate    = "c_t_rate"
	VelocityRate  = "c_v_rate"
	PTRate        = "c_pt_rate"
	MVRate        = "c_mv_rate"
	CPILevel      = "cpi"
	M1Level       = "m1"
	OutputLevel   = "t"
	VelocityLevel = "v"
	MVLevel       = "mv"
	PTLevel       = "pt"
)

// Country is one row of the dataset.
type Country struct {
	Name string

	CPIRate      float64
	M1Rate       float64
	M1RealRate   float64
	OutputRate   float64
	VelocityRate float64 // CPIRate + OutputRate - M1Rate

	CPI      float64
	M1       float64
	Output   float64
	Velocity float64
	MV       float64 // M1 * Velocity
	PT       float64 // CPI * Output

	PTRate float64 // CPIRate + OutputRate
	MVRate float64 // M1Rate + VelocityRate
}

// Dataset holds the countries in file order.
type Dataset struct {
	Countries []Country
}

// Read reads the dataset from path.
func Read(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadFrom reads the dataset from r. The first column holds the country
// name; the rate columns are found by header.
func ReadFrom(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := panel.HeaderIndex(header)

	sources := []string{InflationColumn, CurrencyGrowthColumn, RealCurrencyColumn, RealGDPGrowthColumn}
	idx := make([]int, len(sources))
	for i, name := range sources {
		if idx[i], err = panel.RequireColumn(cols, name); err != nil {
			return nil, err
		}
	}

	d := &Dataset{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		values := make([]float64, len(sources))
		for i, p := range idx {
			if values[i], err = panel.ParseValue(panel.Field(row, p)); err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, sources[i], err)
			}
		}
		d.Countries = append(d.Countries, newCountry(panel.Field(row, 0), values[0], values[1], values[2], values[3]))
	}
	d.deriveLevels()
	return d, nil
}

func newCountry(name string, inflation, currency, realCurrency, realGDP float64) Country {
	c := Country{
		Name:       name,
		CPIRate:    inflation,
		M1Rate:     currency,
		M1RealRate: realCurrency,
		OutputRate: realGDP,
	}
	c.VelocityRate = inflation + realGDP - currency
	c.PTRate = c.CPIRate + c.OutputRate
	c.MVRate = c.M1Rate + c.VelocityRate
	return c
}

// deriveLevels fills the level columns from the rates: one unit grown
// continuously at the rate for Years years.
func (d *Dataset) deriveLevels() {
	level := func(rate func(*Country) float64) []float64 {
		rates := make([]float64, len(d.Countries))
		for i := range d.Countries {
			rates[i] = rate(&d.Countries[i])
		}
		return calc.RatesToEndValuesContinuous(rates, Years)
	}
	cpi := level(columns[CPIRate])
	m1 := level(columns[M1Rate])
	output := level(columns[OutputRate])
	velocity := level(columns[VelocityRate])

	for i := range d.Countries {
		c := &d.Countries[i]
		c.CPI, c.M1, c.Output, c.Velocity = cpi[i], m1[i], output[i], velocity[i]
		c.MV = c.M1 * c.Velocity
		c.PT = c.CPI * c.Output
	}
}

// Names returns the country names in file order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.Countries))
	for i, c := range d.Countries {
		out[i] = c.Name
	}
	return out
}

// Column returns one derived column, e.g. Column(M1Rate).
func (d *Dataset) Column(name string) ([]float64, error) {
	get, ok := columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", panel.ErrMissingColumn, name)
	}
	out := make([]float64, len(d.Countries))
	for i := range d.Countries {
		out[i] = get(&d.Countries[i])
	}
	return out, nil
}

var columns = map[string]func(*Country) float64{
	CPIRate:       func(c *Country) float64 { return c.CPIRate },
	M1Rate:        func(c *Country) float64 { return c.M1Rate },
	M1RealRate:    func(c *Country) float64 { return c.M1RealRate },
	OutputRate:    func(c *Country) float64 { return c.OutputRate },
	VelocityRate:  func(c *Country) float64 { return c.VelocityRate },
	PTRate:        func(c *Country) float64 { return c.PTRate },
	MVRate:        func(c *Country) float64 { return c.MVRate },
	CPILevel:      func(c *Country) float64 { return c.CPI },
	M1Level:       func(c *Country) float64 { return c.M1 },
	OutputLevel:   func(c *Country) float64 { return c.Output },
	VelocityLevel: func(c *Country) float64 { return c.Velocity },
	MVLevel:       func(c *Country) float64 { return c.MV },
	PTLevel:       func(c *Country) float64 { return c.PT },
}
