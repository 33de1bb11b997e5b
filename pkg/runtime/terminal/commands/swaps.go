package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/charts"
	"github.com/artpersonnft/SECthingv2/pkg/services/swaps"
)

type SwapsCmd struct {
	dir       string
	file      string
	chartsDir string
	noChart   bool
	deps      Deps
}

func NewSwapsCmd(deps Deps) *cobra.Command {
	sc := &SwapsCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "swaps",
		Short: "Trace swap position chains and chart NEWT activity",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dir, "dir", "", "Directory holding the swap CSV")
	cmd.Flags().StringVar(&sc.file, "file", "", "Swap CSV file name")
	cmd.Flags().StringVar(&sc.chartsDir, "charts-dir", "", "Chart output directory (defaults to the profile charts_dir)")
	cmd.Flags().BoolVar(&sc.noChart, "no-chart", false, "Skip chart rendering")

	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (sc *SwapsCmd) run(cmd *cobra.Command, _ []string) error {
	chartsDir := sc.chartsDir
	if chartsDir == "" {
		chartsDir = sc.deps.Profile.ChartsDir
	}
	return runSwaps(cmd.Context(), sc.deps, sc.dir, sc.file, chartsDir, !sc.noChart)
}

// runSwaps is shared with the interactive loop.
func runSwaps(_ context.Context, deps Deps, dir, file, chartsDir string, renderChart bool) error {
	records, err := swaps.ParseRecords(filepath.Join(dir, file))
	if err != nil {
		return err
	}

	chains := swaps.BuildChains(records)
	open := swaps.OpenPositions(records, chains)

	base := strings.TrimSuffix(file, filepath.Ext(file))
	exportPath := filepath.Join(dir, "open_"+base+".csv")
	if err := swaps.WriteOpenPositions(exportPath, open); err != nil {
		return err
	}
	if err := deps.Reporter.HandleOpenPositions(base, len(chains), open, exportPath); err != nil {
		return err
	}

	if renderChart {
		activity := swaps.DailyActivity(records)
		path, err := charts.RenderSwapActivity(activity, base, chartsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Output, "Activity charts written to %s\n", path)
	}
	return nil
}
