package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// RenderSwapActivity writes the swap-activity page: per-day NEWT trade counts
// for all products, CFDs and non-CFDs, plus non-basket notional by currency.
func RenderSwapActivity(activity domain.SwapActivity, base, dir string) (string, error) {
	if len(activity.Dates) == 0 {
		return "", &domain.SelectionError{Reason: "no NEWT events with execution dates"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create charts dir: %w", err)
	}

	dates := make([]string, 0, len(activity.Dates))
	for _, d := range activity.Dates {
		dates = append(dates, d.Format(dateFormat))
	}

	page := components.NewPage()
	page.PageTitle = base
	page.AddCharts(
		countBar(fmt.Sprintf("All NEWT trades per day (%s)", base), dates, activity.All),
		countBar(fmt.Sprintf("NEWT CFD trades per day (%s)", base), dates, activity.CFD),
		countBar(fmt.Sprintf("NEWT non-CFD trades per day (%s)", base), dates, activity.NonCFD),
		notionalBar(fmt.Sprintf("Non-basket NEWT notional per day (%s)", base), dates, activity.Notional),
	)

	path := filepath.Join(dir, chartFileName(base, "swaps"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}

func countBar(title string, dates []string, counts []int) *charts.Bar {
	bar := newBar(title)
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.BarData{Value: c})
	}
	bar.SetXAxis(dates).AddSeries("Trades", data)
	return bar
}

// notionalBar stacks one series per currency across the shared date axis.
func notionalBar(title string, dates []string, notional []map[string]float64) *charts.Bar {
	currencies := map[string]bool{}
	for _, day := range notional {
		for c := range day {
			currencies[c] = true
		}
	}
	sorted := make([]string, 0, len(currencies))
	for c := range currencies {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	bar := newBar(title)
	bar.SetXAxis(dates)
	for _, currency := range sorted {
		data := make([]opts.BarData, 0, len(notional))
		for _, day := range notional {
			data = append(data, opts.BarData{Value: day[currency]})
		}
		bar.AddSeries(currency, data, charts.WithBarChartOpts(opts.BarChart{Stack: "notional"}))
	}
	return bar
}
