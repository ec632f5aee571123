// Package stats provides the regression and binning primitives used by the
// analysis.
//
// # Simple Linear Regression
//
//	fit, err := stats.OLS(moneyGrowth, inflation)
//	if errors.Is(err, stats.ErrInsufficientData) {
//	    // fewer than two usable observations
//	}
//	fmt.Printf("slope=%.2f r2=%.2f\n", fit.Slope, fit.RSquared)
//
// # Equal-Frequency Buckets
//
// QCut splits values into q buckets of (nearly) equal count:
//
//	buckets, err := stats.QCut([]float64{0.1, 0.4, 0.6, 0.9}, 4)
//	// buckets == []int{0, 1, 2, 3}
//
// Edges are linearly interpolated quantiles; equal values always land in
// the same bucket, and data whose edges coincide is rejected with
// ErrNonUniqueEdges.
//
// QCutRank bins by rank instead, so repeated values never fail. Equal values
// are ranked in input order and may fall into adjacent buckets:
//
//	buckets, _ := stats.QCutRank([]float64{1, 1, 1, 0.5, 0.2}, 4)
//	// buckets == []int{1, 2, 3, 0, 0}
package stats
