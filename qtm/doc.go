// Package qtm studies the quantity theory of money on OECD panel data.
//
// The pipeline runs in stages, each taking an immutable input and producing
// a new table:
//
//	money, _ := panel.ToSeries(m1Records, "M1", panel.Annual)
//	cpi, _ := panel.ToSeries(cpiRecords, "CPI", panel.Annual)
//
//	frame, err := qtm.MoneyCPIFrame(money, cpi, "m1", panel.Annual)
//	regs, err := qtm.MoneyCPIRegressions(frame, "c_m1")
//
// MoneyCPIFrame computes period-over-period percentage changes within each
// country and annualizes monthly and quarterly changes. MoneyCPIRegressions
// fits inflation on money growth per country; countries without enough
// observations are reported in RegressionSet.Skipped rather than failing
// the run.
//
// # Dataset
//
// Load reads the persisted frames and regressions of one aggregate back,
// applies the configured exclusions, and computes the max-inflation
// summary:
//
//	ds, err := qtm.Load("data/preprocess", "M1", qtm.DefaultLoadOptions())
//	top := ds.QuantileSubset(4)
//
// # Trajectories
//
// QuantileTS ranks each country's years into categories and follows the
// other variable's category over the following years:
//
//	p, err := ds.QuantileTS(20, 6, qtm.RankByMoney)
//	rows := qtm.QuantileTSSummary(p, 15)
package qtm
