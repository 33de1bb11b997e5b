package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
	"github.com/artpersonnft/SECthingv2/pkg/services/pricing"
)

// Analyzer turns an analysis request into renderable chart data. The pricing
// provider is optional; when present its series is a best-effort overlay and
// its failure never aborts the core result.
type Analyzer struct {
	prices pricing.Provider
}

func NewAnalyzer(prices pricing.Provider) *Analyzer {
	return &Analyzer{prices: prices}
}

// BuildChartData parses the selected file, derives the series and attaches
// the optional reference-price overlay.
func (a *Analyzer) BuildChartData(ctx context.Context, req domain.AnalysisRequest) (*domain.ChartData, error) {
	rows, err := ParseTransactions(filepath.Join(req.Dir, req.File))
	if err != nil {
		return nil, err
	}

	series, err := Aggregate(rows, req.Granularity, req.Mode, req.Ticker)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSuffix(req.File, filepath.Ext(req.File))
	if series.Ticker != "" {
		title = fmt.Sprintf("%s (%s)", title, series.Ticker)
	}
	data := &domain.ChartData{
		Title:  title,
		Series: *series,
	}

	if a.prices != nil && series.Ticker != "" && len(series.Points) > 0 {
		from := series.Points[0].Date
		to := series.Points[len(series.Points)-1].Date
		ref, err := a.prices.FetchDailySeries(ctx, series.Ticker, from, to)
		if err != nil {
			zerolog.Ctx(ctx).Warn().
				Str("ticker", series.Ticker).
				Err(err).
				Msg("reference price lookup failed, rendering without overlay")
		} else {
			data.Reference = ref
		}
	}

	return data, nil
}
