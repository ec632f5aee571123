package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/goqtm/barro"
	"github.com/sartorproj/goqtm/stats"
	"github.com/sartorproj/goqtm/viz"
)

const barroSource = "Barro, Macroeconomics: A Modern Approach, 2008"

type barroFlags struct {
	x, y      string
	plot      string
	residuals string
	highlight []string
}

func newBarroCmd(a *app) *cobra.Command {
	f := &barroFlags{}
	cmd := &cobra.Command{
		Use:   "barro",
		Short: "Cross-country regression of inflation on currency growth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := barro.Read(a.cfg.Paths.Barro)
			if err != nil {
				return err
			}
			return runBarro(cmd.OutOrStdout(), d, f)
		},
	}
	cmd.Flags().StringVar(&f.x, "x", barro.M1Rate, "Column on the x axis")
	cmd.Flags().StringVar(&f.y, "y", barro.CPIRate, "Column on the y axis")
	cmd.Flags().StringVar(&f.plot, "plot", "", "Write the scatter figure to this file")
	cmd.Flags().StringVar(&f.residuals, "residuals", "", "Write the regression error figure to this file")
	cmd.Flags().StringSliceVar(&f.highlight, "label", []string{"Brazil", "Japan", "Switzerland", "United States"}, "Countries to label")
	return cmd
}

func runBarro(w io.Writer, d *barro.Dataset, f *barroFlags) error {
	x, err := d.Column(f.x)
	if err != nil {
		return err
	}
	y, err := d.Column(f.y)
	if err != nil {
		return err
	}

	fit, err := stats.OLS(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s on %s: slope=%.3f intercept=%.3f r2=%.3f n=%d\n",
		f.y, f.x, fit.Slope, fit.Intercept, fit.RSquared, fit.NObs)

	data := viz.XYData{Labels: d.Names(), X: x, Y: y}
	opts := viz.Options{
		Title:     "Money growth and inflation across countries",
		XLabel:    f.x,
		YLabel:    f.y,
		Highlight: f.highlight,
		Source:    barroSource,
	}

	if f.plot != "" {
		p, _, err := viz.XYFigure(data, opts)
		if err != nil {
			return err
		}
		if err := viz.Save(p, f.plot, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
	}
	if f.residuals != "" {
		p, err := viz.ResidualFigure(data, fit, opts)
		if err != nil {
			return err
		}
		if err := viz.Save(p, f.residuals, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
	}
	return nil
}
