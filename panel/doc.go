// Package panel provides country × time panel data: loading OECD source
// files, aligning series, and persisting derived tables.
//
// # Loading
//
// OECD exports are long-format CSV files with LOCATION, TIME, FREQUENCY and
// Value columns (plus SUBJECT and MEASURE for CPI). ReadRecords parses such a
// file and ToSeries extracts one frequency as a sorted, uniquely keyed
// Series:
//
//	records, err := panel.ReadRecords("data/oecd/CPI.csv")
//	records = panel.FilterRecords(records, func(r panel.Record) bool {
//	    return r.Subject == "TOT" && r.Measure == "IDX2015"
//	})
//	cpi, err := panel.ToSeries(records, "CPI", panel.Annual)
//
// # Frames
//
// OuterJoin aligns several series on the union of their keys, producing a
// Frame. A Frame is immutable; Filter, DropNA, WithColumns and Country return
// new frames. Groups exposes the contiguous per-country row ranges and
// Series returns a single country's column as a timeseries.Series.
//
// # Persistence
//
// WriteFrameFile and ReadFrameFile store frames as CSV with LOCATION and
// TIME leading columns and empty fields for missing values.
package panel
