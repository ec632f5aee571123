package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrNonUniqueEdges is returned when the data cannot be split into the
// requested number of equal-frequency buckets because two bucket edges
// coincide.
var ErrNonUniqueEdges = errors.New("bucket edges are not unique")

// QuantileEdges returns the q+1 bucket edges of an equal-frequency split of
// the non-missing values. Edge k is the k/q quantile computed by linear
// interpolation between order statistics at position (n-1)*k/q.
func QuantileEdges(values []float64, q int) ([]float64, error) {
	if q < 1 {
		return nil, fmt.Errorf("invalid number of buckets %d", q)
	}

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%w: no values to bucket", ErrInsufficientData)
	}
	inds := make([]int, len(sorted))
	floats.Argsort(sorted, inds)

	n := len(sorted)
	edges := make([]float64, q+1)
	for k := 0; k <= q; k++ {
		h := float64(n-1) * float64(k) / float64(q)
		lo := int(math.Floor(h))
		if lo >= n-1 {
			edges[k] = sorted[n-1]
			continue
		}
		edges[k] = sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
	}
	return edges, nil
}

// QCut assigns each value to one of q equal-frequency buckets numbered
// 0..q-1, lowest values first. A value x falls in bucket i when
// edge[i] < x <= edge[i+1]; the lowest edge is included in bucket 0, so
// equal values always share a bucket. Missing values get bucket -1.
func QCut(values []float64, q int) ([]int, error) {
	edges, err := QuantileEdges(values, q)
	if err != nil {
		return nil, err
	}
	for k := 1; k < len(edges); k++ {
		if edges[k] == edges[k-1] {
			return nil, fmt.Errorf("%w: edge %g repeats", ErrNonUniqueEdges, edges[k])
		}
	}

	upper := edges[1:]
	buckets := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			buckets[i] = -1
			continue
		}
		buckets[i] = sort.SearchFloat64s(upper, v)
		if buckets[i] >= q {
			buckets[i] = q - 1
		}
	}
	return buckets, nil
}

// QCutRank assigns each value to one of q equal-frequency buckets of its
// rank rather than its value. Values are ranked ascending and equal values
// are ranked in input order, so ties may be split across adjacent buckets
// but the call never fails on repeated values. A single value is put in
// bucket 0. Missing values get bucket -1.
func QCutRank(values []float64, q int) ([]int, error) {
	if q < 1 {
		return nil, fmt.Errorf("invalid number of buckets %d", q)
	}

	var order []int
	for i, v := range values {
		if !math.IsNaN(v) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, len(values))
	for i := range ranks {
		ranks[i] = math.NaN()
	}
	for r, i := range order {
		ranks[i] = float64(r + 1)
	}

	if len(order) < 2 {
		buckets := make([]int, len(values))
		for i, r := range ranks {
			if math.IsNaN(r) {
				buckets[i] = -1
			}
		}
		return buckets, nil
	}
	return QCut(ranks, q)
}
