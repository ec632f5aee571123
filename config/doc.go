// Package config loads the YAML configuration of the qtm command.
//
// Every field has a default, so an empty path or a partial file is valid:
//
//	cfg, err := config.Load("qtm.yaml")
//	opts, err := cfg.LoadOptions(log.Logger)
//
// # File Format
//
// Keys left out keep their Default value. Lists replace the default list
// rather than extending it:
//
//	paths:
//	  cpi: data/oecd/cpi.csv
//	  m1: data/oecd/m1.csv
//	  m3: data/oecd/m3.csv
//	  barro: data/barro/barro-data-set.csv
//	  preprocess: data/preprocess
//	cpi_filter:
//	  subject: TOT
//	  measure: IDX2015
//	drop_locations: [OECD, OECDE]
//	exclusions:
//	  - country: USA
//	    frequency: A
//	    from: "2020-01-01"
//	    to: "2020-12-31"
//	  - country: ISL
//	    frequency: M
//	    to: "1976-12-31"
//
// # Exclusions
//
// An exclusion drops a country's rows of one frequency between two
// inclusive dates. A missing bound is open, so the ISL entry above drops
// every monthly row up to the end of 1976. Load rejects entries without a
// country, with an unknown frequency, with a malformed date or ending
// before they start; the error wraps ErrInvalid.
//
// # Aggregates
//
// AggregatePath maps "M1" or "M3" (either case) to its configured input:
//
//	path, err := cfg.AggregatePath("m3")
//	// path == "data/oecd/m3.csv"
package config
