// Package viz renders the scatter charts comparing money growth with
// inflation across countries.
//
// Every chart is a gonum/plot Plot. X and Y share one axis range, so the
// y = x line is a diagonal and points above it are countries whose prices
// grew faster than their money supply.
//
// # Scatter With Regression
//
// XYFigure draws one point per label, the least-squares line of Y on X and
// the dashed y = x reference:
//
//	data := viz.XYData{
//	    Labels: ds.Names(),
//	    X:      m1Rates,
//	    Y:      cpiRates,
//	}
//	p, fit, err := viz.XYFigure(data, viz.Options{
//	    Title:     "Money growth vs. inflation",
//	    XLabel:    "M1 growth",
//	    YLabel:    "CPI growth",
//	    Highlight: []string{"Brazil", "Switzerland"},
//	    Source:    "Barro (2008)",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(viz.RegressionLabel(fit))
//	// e.g. regression, r²=0.98 (slope=0.99)
//
// Highlighted labels are drawn in HighlightColor and annotated with their
// name. Points with a NaN or infinite coordinate are left out of the scatter
// and of the fit.
//
// # Residuals
//
// ResidualFigure reuses the fit to plot Y - fit(X) against X, with a zero
// line:
//
//	res, err := viz.ResidualFigure(data, fit, viz.Options{XLabel: "M1 growth"})
//
// # Axis Range
//
// Limits returns the common range of both axes with a 10% margin:
//
//	lo, hi := viz.Limits([]float64{0, 10}, []float64{-5, 20})
//	// lo == -5.5, hi == 22
//
// # Saving
//
// Save picks the image format from the file extension:
//
//	err := viz.Save(p, "m1-cpi.png", 6*vg.Inch, 6*vg.Inch)
package viz
