// Package charts renders derived series as self-contained interactive HTML
// pages. Hovering a bar or point shows the underlying values; the zoom slider
// narrows the date window.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

const dateFormat = "2006-01-02"

// RenderTransactions writes the visualizer page for one chart data set and
// returns the output path. The page carries the fixed series: mean price
// line, aggregated volume bars and the simulated failure trend, plus the
// reference overlay when present.
func RenderTransactions(data *domain.ChartData, dir string) (string, error) {
	if len(data.Series.Points) == 0 {
		return "", &domain.SelectionError{Ticker: data.Series.Ticker, Reason: "nothing to render"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create charts dir: %w", err)
	}

	dates := make([]string, 0, len(data.Series.Points))
	prices := make([]opts.LineData, 0, len(data.Series.Points))
	volumes := make([]opts.BarData, 0, len(data.Series.Points))
	fails := make([]opts.LineData, 0, len(data.Series.Points))
	for _, p := range data.Series.Points {
		dates = append(dates, p.Date.Format(dateFormat))
		prices = append(prices, opts.LineData{Value: p.MeanPrice})
		volumes = append(volumes, opts.BarData{Value: p.Volume})
		fails = append(fails, opts.LineData{Value: p.SimulatedFTD})
	}

	priceLine := newLine(fmt.Sprintf("%s — mean price per %s bucket", data.Title, data.Series.Granularity))
	priceLine.SetXAxis(dates).
		AddSeries("Mean price", prices, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	if ref := referenceSeries(data, dates); ref != nil {
		priceLine.AddSeries("Reference close", ref,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}

	volumeBar := newBar(fmt.Sprintf("%s — %s volume (%s) and simulated FTD", data.Title, data.Series.Granularity, data.Series.Mode))
	volumeBar.SetXAxis(dates).AddSeries("Volume", volumes)

	failLine := charts.NewLine()
	failLine.SetXAxis(dates).
		AddSeries("Simulated FTD", fails, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	volumeBar.Overlap(failLine)

	page := components.NewPage()
	page.PageTitle = data.Title
	page.AddCharts(priceLine, volumeBar)

	path := filepath.Join(dir, chartFileName(data.Title, string(data.Series.Granularity)))
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

// referenceSeries aligns the best-effort overlay with the bucket axis; dates
// with no reference observation render as gaps.
func referenceSeries(data *domain.ChartData, dates []string) []opts.LineData {
	if len(data.Reference) == 0 {
		return nil
	}
	byDate := make(map[string]float64, len(data.Reference))
	for _, p := range data.Reference {
		byDate[p.Date.Format(dateFormat)] = p.Close
	}
	series := make([]opts.LineData, 0, len(dates))
	for _, d := range dates {
		if c, ok := byDate[d]; ok {
			series = append(series, opts.LineData{Value: c})
		} else {
			series = append(series, opts.LineData{Value: nil})
		}
	}
	return series
}

func newLine(title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(chartOptions(title)...)
	return line
}

func newBar(title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOptions(title)...)
	return bar
}

func chartOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "480px"}),
	}
}

func chartFileName(title, suffix string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, title)
	return fmt.Sprintf("%s_%s.html", base, suffix)
}
