package panel

import (
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/goqtm/timeseries"
)

// Frame is a table indexed by (country, time) whose columns are aligned row
// by row. Rows are kept in index order, so each country's rows are
// contiguous when the index is sorted.
//
// Frames are not modified after construction; every transformation returns
// a new Frame.
type Frame struct {
	index   []Key
	columns []string
	data    [][]float64
	pos     map[string]int
}

// Group is a contiguous run of rows belonging to one country.
type Group struct {
	Country    string
	Start, End int // rows [Start, End)
}

// NewFrame builds a frame from an index and column-major data.
func NewFrame(index []Key, columns []string, data [][]float64) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, fmt.Errorf("%d column names for %d columns: %w", len(columns), len(data), ErrShape)
	}

	f := &Frame{
		index:   index,
		columns: columns,
		data:    data,
		pos:     make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if len(data[i]) != len(index) {
			return nil, fmt.Errorf("column %s has %d rows, index has %d: %w", name, len(data[i]), len(index), ErrShape)
		}
		f.pos[name] = i
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Has reports whether the frame has the named column.
func (f *Frame) Has(column string) bool {
	_, ok := f.pos[column]
	return ok
}

// Key returns the index entry of row i.
func (f *Frame) Key(i int) Key {
	return f.index[i]
}

// Index returns a copy of the row index.
func (f *Frame) Index() []Key {
	out := make([]Key, len(f.index))
	copy(out, f.index)
	return out
}

// Column returns a copy of the named column.
func (f *Frame) Column(column string) ([]float64, error) {
	c, ok := f.pos[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	out := make([]float64, len(f.data[c]))
	copy(out, f.data[c])
	return out, nil
}

// Value returns the value at row i of the named column, or NaN if the
// column does not exist.
func (f *Frame) Value(i int, column string) float64 {
	c, ok := f.pos[column]
	if !ok {
		return math.NaN()
	}
	return f.data[c][i]
}

// Groups returns the contiguous per-country row ranges in row order.
func (f *Frame) Groups() []Group {
	var groups []Group
	for i, k := range f.index {
		if i == 0 || k.Country != f.index[i-1].Country {
			groups = append(groups, Group{Country: k.Country, Start: i, End: i + 1})
			continue
		}
		groups[len(groups)-1].End = i + 1
	}
	return groups
}

// Countries returns the distinct countries in row order.
func (f *Frame) Countries() []string {
	groups := f.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Country
	}
	return out
}

// Rows returns a new frame holding rows [start, end).
func (f *Frame) Rows(start, end int) *Frame {
	index := make([]Key, end-start)
	copy(index, f.index[start:end])
	data := make([][]float64, len(f.data))
	for c := range f.data {
		data[c] = make([]float64, end-start)
		copy(data[c], f.data[c][start:end])
	}
	out, _ := NewFrame(index, f.Columns(), data)
	return out
}

// Country returns the rows of one country.
func (f *Frame) Country(country string) (*Frame, bool) {
	for _, g := range f.Groups() {
		if g.Country == country {
			return f.Rows(g.Start, g.End), true
		}
	}
	return nil, false
}

// Series returns one country's values of a column as a time series.
func (f *Frame) Series(country, column string) (*timeseries.Series, error) {
	c, ok := f.pos[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}

	for _, g := range f.Groups() {
		if g.Country != country {
			continue
		}
		n := g.End - g.Start
		timestamps := make([]time.Time, n)
		values := make([]float64, n)
		for i := 0; i < n; i++ {
			timestamps[i] = f.index[g.Start+i].Time
			values[i] = f.data[c][g.Start+i]
		}
		return timeseries.New(column, timestamps, values)
	}
	return timeseries.New(column, nil, nil)
}

// Filter returns the rows for which keep returns true.
func (f *Frame) Filter(keep func(i int, k Key) bool) *Frame {
	var rows []int
	for i, k := range f.index {
		if keep(i, k) {
			rows = append(rows, i)
		}
	}
	return f.take(rows)
}

// DropNA returns the rows whose values are all finite.
func (f *Frame) DropNA() *Frame {
	return f.Filter(func(i int, _ Key) bool {
		for c := range f.data {
			v := f.data[c][i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	})
}

// WithColumns returns a frame with the given columns appended. Columns with
// an existing name replace the old values.
func (f *Frame) WithColumns(columns []string, data [][]float64) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, fmt.Errorf("%d column names for %d columns: %w", len(columns), len(data), ErrShape)
	}

	names := f.Columns()
	cols := make([][]float64, len(f.data))
	copy(cols, f.data)
	for i, name := range columns {
		if c, ok := f.pos[name]; ok {
			cols[c] = data[i]
			continue
		}
		names = append(names, name)
		cols = append(cols, data[i])
	}
	return NewFrame(f.Index(), names, cols)
}

// Concat stacks frames with identical columns row-wise, in argument order.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return NewFrame(nil, nil, nil)
	}

	columns := frames[0].Columns()
	var index []Key
	data := make([][]float64, len(columns))
	for c := range data {
		data[c] = []float64{}
	}
	for _, f := range frames {
		if len(f.columns) != len(columns) {
			return nil, fmt.Errorf("concat: %d columns, want %d: %w", len(f.columns), len(columns), ErrShape)
		}
		index = append(index, f.index...)
		for c, name := range columns {
			col, err := f.Column(name)
			if err != nil {
				return nil, fmt.Errorf("concat: %w", err)
			}
			data[c] = append(data[c], col...)
		}
	}
	return NewFrame(index, columns, data)
}

func (f *Frame) take(rows []int) *Frame {
	index := make([]Key, len(rows))
	data := make([][]float64, len(f.data))
	for c := range data {
		data[c] = make([]float64, len(rows))
	}
	for r, i := range rows {
		index[r] = f.index[i]
		for c := range f.data {
			data[c][r] = f.data[c][i]
		}
	}
	out, _ := NewFrame(index, f.Columns(), data)
	return out
}

func nanColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = math.NaN()
	}
	return col
}
