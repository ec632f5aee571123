// Package goqtm examines the quantity theory of money on OECD data: does
// inflation follow money growth, country by country?
//
// The module is organised as small packages, from generic to specific:
//
//   - calc: growth-rate arithmetic (discrete and continuous compounding,
//     annualization, average change rate of a series)
//   - timeseries: a single country's time-indexed values
//   - panel: (country, time) indexed frames and the OECD CSV format
//   - stats: simple least-squares regression and equal-frequency binning
//   - qtm: change frames, per-country regressions, summaries, the dataset
//     facade and quantile trajectories
//   - barro: the cross-country Barro dataset
//   - viz: scatter figures with regression and y = x lines
//   - config: YAML configuration
//
// The qtm command in cmd/qtm runs the pipeline:
//
//	qtm preprocess
//	qtm summary --aggregate M1 --plot m1.png
//	qtm quantiles --aggregate M1 --num-q 20 --num-y 6
//	qtm barro --plot barro.png
//
// See the qtm package for the library entry points.
package goqtm
