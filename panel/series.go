package panel

import (
	"fmt"
	"sort"
	"time"
)

// Key identifies one observation in a panel.
type Key struct {
	Country string
	Time    time.Time
}

// Less orders keys by country, then time.
func (k Key) Less(o Key) bool {
	if k.Country != o.Country {
		return k.Country < o.Country
	}
	return k.Time.Before(o.Time)
}

// Equal reports whether two keys name the same observation.
func (k Key) Equal(o Key) bool {
	return k.Country == o.Country && k.Time.Equal(o.Time)
}

// Series is a named panel of values keyed by (country, time), sorted
// ascending with unique keys.
type Series struct {
	Name   string
	Keys   []Key
	Values []float64
}

// NewSeries sorts the observations by key and validates uniqueness.
// The input slices are not modified.
func NewSeries(name string, keys []Key, values []float64) (*Series, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("series %s: %w", name, ErrShape)
	}

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].Less(keys[order[b]])
	})

	s := &Series{
		Name:   name,
		Keys:   make([]Key, len(keys)),
		Values: make([]float64, len(values)),
	}
	for i, j := range order {
		s.Keys[i] = keys[j]
		s.Values[i] = values[j]
		if i > 0 && s.Keys[i].Equal(s.Keys[i-1]) {
			return nil, fmt.Errorf("series %s: %w: %s %s", name, ErrDuplicateKey,
				s.Keys[i].Country, s.Keys[i].Time.Format(DateLayout))
		}
	}
	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// OuterJoin aligns several series on the union of their keys. Keys absent
// from a series become NaN in that series' column. Columns are named after
// the series.
func OuterJoin(series ...*Series) (*Frame, error) {
	var all []Key
	for _, s := range series {
		all = append(all, s.Keys...)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].Less(all[b]) })

	index := make([]Key, 0, len(all))
	for i, k := range all {
		if i > 0 && k.Equal(all[i-1]) {
			continue
		}
		index = append(index, k)
	}

	columns := make([]string, len(series))
	data := make([][]float64, len(series))
	for c, s := range series {
		columns[c] = s.Name
		col := nanColumn(len(index))
		// both key lists are sorted, so a single merge pass aligns them
		j := 0
		for i, k := range index {
			for j < len(s.Keys) && s.Keys[j].Less(k) {
				j++
			}
			if j < len(s.Keys) && s.Keys[j].Equal(k) {
				col[i] = s.Values[j]
			}
		}
		data[c] = col
	}

	return NewFrame(index, columns, data)
}
