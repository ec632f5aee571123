package panel

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout used for TIME values in derived files.
const DateLayout = "2006-01-02"

// Column names of OECD source files and derived frames.
const (
	LocationColumn  = "LOCATION"
	TimeColumn      = "TIME"
	FrequencyColumn = "FREQUENCY"
	SubjectColumn   = "SUBJECT"
	MeasureColumn   = "MEASURE"
	ValueColumn     = "Value"
)

// Record is one row of an OECD source file.
type Record struct {
	Location  string
	Time      time.Time
	Frequency Frequency
	Subject   string
	Measure   string
	Value     float64
}

// ReadRecords loads an OECD source file.
func ReadRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := ReadRecordsFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadRecordsFrom loads OECD rows from r. LOCATION, TIME, FREQUENCY and
// Value are required; SUBJECT and MEASURE are read when present. Rows with
// an empty or NA value are skipped.
func ReadRecordsFrom(r io.Reader) ([]Record, error) {
	reader := newReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := HeaderIndex(header)

	locIdx, err := RequireColumn(cols, LocationColumn)
	if err != nil {
		return nil, err
	}
	timeIdx, err := RequireColumn(cols, TimeColumn)
	if err != nil {
		return nil, err
	}
	freqIdx, err := RequireColumn(cols, FrequencyColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := RequireColumn(cols, ValueColumn)
	if err != nil {
		return nil, err
	}
	subjectIdx, hasSubject := cols[SubjectColumn]
	measureIdx, hasMeasure := cols[MeasureColumn]

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		value, ok, err := parseValue(Field(row, valueIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}

		ts, err := ParseTime(Field(row, timeIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := Record{
			Location:  Field(row, locIdx),
			Time:      ts,
			Frequency: Frequency(Field(row, freqIdx)),
			Value:     value,
		}
		if hasSubject {
			rec.Subject = Field(row, subjectIdx)
		}
		if hasMeasure {
			rec.Measure = Field(row, measureIdx)
		}
		records = append(records, rec)
	}

	return records, nil
}

// FilterRecords returns the records for which keep returns true.
func FilterRecords(records []Record, keep func(Record) bool) []Record {
	var out []Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ToSeries selects the records at the given frequency and returns them as a
// sorted panel series. Countries without data at that frequency are simply
// absent.
func ToSeries(records []Record, name string, freq Frequency) (*Series, error) {
	var keys []Key
	var values []float64
	for _, r := range records {
		if r.Frequency != freq {
			continue
		}
		keys = append(keys, Key{Country: r.Location, Time: r.Time})
		values = append(values, r.Value)
	}
	return NewSeries(name, keys, values)
}

// ReadSeries loads an OECD source file and extracts one frequency.
func ReadSeries(path, name string, freq Frequency) (*Series, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	return ToSeries(records, name, freq)
}

// ParseTime parses OECD TIME values: "2006", "2006-01", "2006-Q1",
// "2006-01-02" and RFC 3339 timestamps.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if len(s) == 7 && (s[5] == 'Q' || s[5] == 'q') && s[4] == '-' {
		year, errY := strconv.Atoi(s[:4])
		quarter, errQ := strconv.Atoi(s[6:])
		if errY == nil && errQ == nil && quarter >= 1 && quarter <= 4 {
			return time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}

	formats := []string{
		DateLayout,
		"2006-01",
		"2006",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range formats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTime, s)
}

// WriteFrame writes a frame as CSV with LOCATION and TIME leading columns.
// Missing values are written as empty fields.
func WriteFrame(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)

	header := append([]string{LocationColumn, TimeColumn}, f.Columns()...)
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, k := range f.index {
		row[0] = k.Country
		row[1] = k.Time.Format(DateLayout)
		for c := range f.data {
			row[2+c] = FormatValue(f.data[c][i])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFrameFile writes a frame to path.
func WriteFrameFile(path string, f *Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFrame(file, f); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

// ReadFrame reads a frame written by WriteFrame. Rows are kept in file
// order.
func ReadFrame(r io.Reader) (*Frame, error) {
	reader := newReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := HeaderIndex(header)
	locIdx, err := RequireColumn(cols, LocationColumn)
	if err != nil {
		return nil, err
	}
	timeIdx, err := RequireColumn(cols, TimeColumn)
	if err != nil {
		return nil, err
	}

	var names []string
	var positions []int
	for i, h := range header {
		if i == locIdx || i == timeIdx {
			continue
		}
		names = append(names, cleanField(h))
		positions = append(positions, i)
	}

	var index []Key
	data := make([][]float64, len(names))
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		ts, err := ParseTime(Field(row, timeIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		index = append(index, Key{Country: Field(row, locIdx), Time: ts})

		for c, p := range positions {
			v, ok, err := parseValue(Field(row, p))
			if err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, names[c], err)
			}
			if !ok {
				v = math.NaN()
			}
			data[c] = append(data[c], v)
		}
	}

	for c := range data {
		if data[c] == nil {
			data[c] = []float64{}
		}
	}
	return NewFrame(index, names, data)
}

// ReadFrameFile reads a frame from path.
func ReadFrameFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := ReadFrame(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// FormatValue renders a float for CSV output; NaN becomes an empty field.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseValue parses a CSV numeric field. Empty and NA-like fields yield
// NaN.
func ParseValue(s string) (float64, error) {
	v, ok, err := parseValue(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return math.NaN(), nil
	}
	return v, nil
}

func parseValue(s string) (float64, bool, error) {
	s = cleanField(s)
	if s == "" || s == "NA" || s == "NaN" || s == "nan" || s == "null" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}

// HeaderIndex maps cleaned header names to their positions.
func HeaderIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		// strip a UTF-8 BOM, which spreadsheet exports put before the first header
		h = strings.TrimPrefix(h, "\ufeff")
		cols[cleanField(h)] = i
	}
	return cols
}

// RequireColumn returns the position of a column or ErrMissingColumn.
func RequireColumn(cols map[string]int, name string) (int, error) {
	i, ok := cols[name]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return i, nil
}

// Field returns the cleaned value at position i, or "" past the end of row.
func Field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return cleanField(row[i])
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}
