package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/charts"
	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

type AnalyzeCmd struct {
	dir         string
	file        string
	granularity string
	mode        string
	ticker      string
	chartsDir   string
	deps        Deps
}

func NewAnalyzeCmd(deps Deps) *cobra.Command {
	ac := &AnalyzeCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Derive series from a transaction CSV and render the chart",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dir, "dir", "", "Directory holding the CSV file")
	cmd.Flags().StringVar(&ac.file, "file", "", "CSV file name")
	cmd.Flags().StringVar(&ac.granularity, "granularity", "daily", "Bucket size: daily, weekly or monthly")
	cmd.Flags().StringVar(&ac.mode, "mode", "sum", "Volume aggregation: sum, mean or max")
	cmd.Flags().StringVar(&ac.ticker, "ticker", "", "Optional ticker filter")
	cmd.Flags().StringVar(&ac.chartsDir, "charts-dir", "", "Chart output directory (defaults to the profile charts_dir)")

	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	granularity, mode, err := granularityAndMode(ac.granularity, ac.mode)
	if err != nil {
		return err
	}
	chartsDir := ac.chartsDir
	if chartsDir == "" {
		chartsDir = ac.deps.Profile.ChartsDir
	}
	return runAnalyze(cmd.Context(), ac.deps, domain.AnalysisRequest{
		Dir:         ac.dir,
		File:        ac.file,
		Granularity: granularity,
		Mode:        mode,
		Ticker:      ac.ticker,
	}, chartsDir)
}

// runAnalyze is shared with the interactive loop.
func runAnalyze(ctx context.Context, deps Deps, req domain.AnalysisRequest, chartsDir string) error {
	data, err := deps.Analyzer.BuildChartData(ctx, req)
	if err != nil {
		return err
	}
	path, err := charts.RenderTransactions(data, chartsDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Output, "Chart written to %s (%d %s buckets)\n", path, len(data.Series.Points), req.Granularity)
	return nil
}
