package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goqtm/qtm"
)

type quantilesFlags struct {
	aggregate     string
	numQ          int
	numY          int
	thresholdFrac float64
	by            string
	json          string
}

func newQuantilesCmd(a *app) *cobra.Command {
	f := &quantilesFlags{}
	cmd := &cobra.Command{
		Use:   "quantiles",
		Short: "How long high money growth (or inflation) years stay high",
		Long: `Ranks every country's years into --num-q categories of money growth (or of
inflation with --by cpi), follows the other variable's category over the next
--num-y years, and reports, per country, the mean share of those years spent
in the top --threshold-frac of categories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			by, err := parseRankBy(f.by)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(f.aggregate)
			if err != nil {
				return err
			}
			return runQuantiles(cmd.OutOrStdout(), ds, by, f)
		},
	}
	cmd.Flags().StringVar(&f.aggregate, "aggregate", "M1", "Monetary aggregate (M1|M3)")
	cmd.Flags().IntVar(&f.numQ, "num-q", 20, "Number of categories per country")
	cmd.Flags().IntVar(&f.numY, "num-y", 6, "Trajectory length in observations")
	cmd.Flags().Float64Var(&f.thresholdFrac, "threshold-frac", 0.25, "Share of top categories counted as high")
	cmd.Flags().StringVar(&f.by, "by", "money", "Variable whose category starts a trajectory (money|cpi)")
	cmd.Flags().StringVar(&f.json, "json", "", "Export the persistence table as JSON to this file")
	return cmd
}

func parseRankBy(s string) (qtm.RankBy, error) {
	switch s {
	case "money", "m":
		return qtm.RankByMoney, nil
	case "cpi", "inflation":
		return qtm.RankByCPI, nil
	}
	return 0, fmt.Errorf("--by: unknown variable %q", s)
}

func runQuantiles(w io.Writer, ds *qtm.Dataset, by qtm.RankBy, f *quantilesFlags) error {
	if f.numQ < 2 || f.numY < 1 {
		return fmt.Errorf("--num-q must be at least 2 and --num-y at least 1")
	}
	if f.thresholdFrac <= 0 || f.thresholdFrac >= 1 {
		return fmt.Errorf("--threshold-frac must be in (0, 1)")
	}

	rows, err := ds.QuantileTSPersistence(f.thresholdFrac, f.numQ, f.numY, by)
	if err != nil {
		return err
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "country\tpersistence\tstarts\t\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.0f%%\t%d\t\n", displayName(r.Country), r.Mean*100, r.Starts)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if f.json != "" {
		return writeJSON(f.json, rows)
	}
	return nil
}
