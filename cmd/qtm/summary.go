package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/goqtm/qtm"
	"github.com/sartorproj/goqtm/viz"
)

type summaryFlags struct {
	aggregate string
	plot      string
	json      string
}

// summaryRow is the exported form of one country's summary.
type summaryRow struct {
	Country      string  `json:"country"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	MoneyRate    float64 `json:"money_rate"`
	CPIRate      float64 `json:"cpi_rate"`
	MaxInflation float64 `json:"max_inflation"`
	Bucket       int     `json:"max_inflation_bucket"`
}

func newSummaryCmd(a *app) *cobra.Command {
	f := &summaryFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Long-run money growth against inflation per country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.loadDataset(f.aggregate)
			if err != nil {
				return err
			}
			return runSummary(cmd.OutOrStdout(), ds, f)
		},
	}
	cmd.Flags().StringVar(&f.aggregate, "aggregate", "M1", "Monetary aggregate (M1|M3)")
	cmd.Flags().StringVar(&f.plot, "plot", "", "Write the scatter figure to this file (.png, .svg, .pdf)")
	cmd.Flags().StringVar(&f.json, "json", "", "Export the summary as JSON to this file")
	return cmd
}

func runSummary(w io.Writer, ds *qtm.Dataset, f *summaryFlags) error {
	rows, err := summaryRows(ds)
	if err != nil {
		return err
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "country\tyears\t%s %%/yr\tCPI %%/yr\tmax infl.\tbucket\t\n", ds.Aggregate())
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d-%d\t%.2f\t%.2f\t%.1f\t%d\t\n",
			displayName(r.Country), r.Start, r.End, r.MoneyRate, r.CPIRate, r.MaxInflation, r.Bucket)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if f.json != "" {
		if err := writeJSON(f.json, rows); err != nil {
			return err
		}
	}
	if f.plot != "" {
		return summaryPlot(ds, rows, f.plot)
	}
	return nil
}

func summaryRows(ds *qtm.Dataset) ([]summaryRow, error) {
	changes, err := ds.ChangeSummary()
	if err != nil {
		return nil, err
	}

	ranges := make(map[string]qtm.YearRange)
	for _, yr := range qtm.YearSummary(ds.Annual()) {
		ranges[yr.Country] = yr
	}
	peaks := make(map[string]qtm.MaxInflation)
	for _, m := range ds.MaxInflation() {
		peaks[m.Country] = m
	}

	rows := make([]summaryRow, len(changes))
	for i, c := range changes {
		rows[i] = summaryRow{
			Country:      c.Country,
			Start:        ranges[c.Country].Start,
			End:          ranges[c.Country].End,
			MoneyRate:    c.Money,
			CPIRate:      c.CPI,
			MaxInflation: peaks[c.Country].CPI,
			Bucket:       peaks[c.Country].Bucket,
		}
	}
	return rows, nil
}

func summaryPlot(ds *qtm.Dataset, rows []summaryRow, path string) error {
	data := viz.XYData{
		Labels: make([]string, len(rows)),
		X:      make([]float64, len(rows)),
		Y:      make([]float64, len(rows)),
	}
	for i, r := range rows {
		data.Labels[i] = r.Country
		data.X[i] = r.MoneyRate
		data.Y[i] = r.CPIRate
	}

	p, _, err := viz.XYFigure(data, viz.Options{
		Title:     fmt.Sprintf("%s growth and inflation", ds.Aggregate()),
		XLabel:    fmt.Sprintf("%s growth, %% per year", ds.Aggregate()),
		YLabel:    "CPI growth, % per year",
		Highlight: ds.QuantileSubset(qtm.MaxInflationBuckets),
		Source:    "OECD",
	})
	if err != nil {
		return err
	}
	return viz.Save(p, path, 6*vg.Inch, 6*vg.Inch)
}
