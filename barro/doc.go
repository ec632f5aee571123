// Package barro reads the cross-country averages of inflation, money and
// output growth published with Barro's Macroeconomics: A Modern Approach
// (2008), and derives the level indices used to compare the two sides of
// the equation of exchange.
//
// All rates are average annual rates as fractions, not percentages. Levels
// are the value of one unit compounded continuously over Years years.
//
// # Reading
//
// The first column holds the country; the rate columns are found by their
// header, so column order does not matter and extra columns are ignored:
//
//	Country,Inflation rate,Growth rate of currency,Growth rate of real currency,Growth rate of real GDP
//	Switzerland,0.03,0.05,0.02,0.02
//
//	ds, err := barro.Read("data/barro/barro-data-set.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Names())
//	// [Switzerland]
//
// # Derived Columns
//
// Velocity growth closes the equation of exchange M·V = P·T in rates:
//
//	VelocityRate = CPIRate + OutputRate - M1Rate
//	MVRate       = M1Rate + VelocityRate
//	PTRate       = CPIRate + OutputRate
//
// so MVRate equals PTRate for every country. For Switzerland above the
// velocity rate is 0, the CPI level is exp(0.03·40) ≈ 3.32 and the M1 level
// is exp(0.05·40) ≈ 7.39.
//
// # Columns
//
// Column returns one variable across all countries, in file order, for
// plotting or regression:
//
//	x, err := ds.Column(barro.M1Rate)
//	y, err := ds.Column(barro.CPIRate)
//	fit, err := stats.OLS(x, y)
//
// Unknown names return an error wrapping panel.ErrMissingColumn.
package barro
