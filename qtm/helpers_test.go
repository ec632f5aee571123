package qtm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goqtm/panel"
)

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// obs is one row of a test frame.
type obs struct {
	country string
	time    time.Time
	values  []float64
}

func buildFrame(t *testing.T, columns []string, rows ...obs) *panel.Frame {
	t.Helper()
	index := make([]panel.Key, len(rows))
	data := make([][]float64, len(columns))
	for c := range data {
		data[c] = make([]float64, len(rows))
	}
	for i, r := range rows {
		require.Len(t, r.values, len(columns))
		index[i] = panel.Key{Country: r.country, Time: r.time}
		for c, v := range r.values {
			data[c][i] = v
		}
	}
	f, err := panel.NewFrame(index, columns, data)
	require.NoError(t, err)
	return f
}

func buildSeries(t *testing.T, name string, rows ...obs) *panel.Series {
	t.Helper()
	keys := make([]panel.Key, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		keys[i] = panel.Key{Country: r.country, Time: r.time}
		values[i] = r.values[0]
	}
	s, err := panel.NewSeries(name, keys, values)
	require.NoError(t, err)
	return s
}

func v(values ...float64) []float64 { return values }
