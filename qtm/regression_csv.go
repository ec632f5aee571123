package qtm

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sartorproj/goqtm/panel"
)

// Column names of persisted regression tables.
const (
	r2Column    = "r2"
	slopeColumn = "slope"
	r2CatColumn = "r2cat"
)

// WriteRegressions writes regressions as CSV indexed by LOCATION.
func WriteRegressions(w io.Writer, regs []Regression) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{panel.LocationColumn, r2Column, slopeColumn, r2CatColumn}); err != nil {
		return err
	}
	for _, r := range regs {
		row := []string{
			r.Country,
			panel.FormatValue(r.RSquared),
			panel.FormatValue(r.Slope),
			strconv.Itoa(r.R2Cat),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRegressionsFile writes regressions to path.
func WriteRegressionsFile(path string, regs []Regression) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRegressions(file, regs); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

// ReadRegressions reads a table written by WriteRegressions, in file order.
func ReadRegressions(r io.Reader) ([]Regression, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := panel.HeaderIndex(header)

	idx := make(map[string]int, 4)
	for _, name := range []string{panel.LocationColumn, r2Column, slopeColumn, r2CatColumn} {
		i, err := panel.RequireColumn(cols, name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}

	var regs []Regression
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		r2, err := panel.ParseValue(panel.Field(row, idx[r2Column]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		slope, err := panel.ParseValue(panel.Field(row, idx[slopeColumn]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cat, err := strconv.Atoi(panel.Field(row, idx[r2CatColumn]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		regs = append(regs, Regression{
			Country:  panel.Field(row, idx[panel.LocationColumn]),
			RSquared: r2,
			Slope:    slope,
			R2Cat:    cat,
		})
	}
	return regs, nil
}

// ReadRegressionsFile reads regressions from path.
func ReadRegressionsFile(path string) ([]Regression, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	regs, err := ReadRegressions(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regs, nil
}
