package analysis

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

type fakeProvider struct {
	points []domain.PricePoint
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchDailySeries(_ context.Context, _ string, _, _ time.Time) ([]domain.PricePoint, error) {
	f.calls++
	return f.points, f.err
}

func splitPath(t *testing.T, path string) (string, string) {
	t.Helper()
	return filepath.Dir(path), filepath.Base(path)
}

func analysisRequest(dir string) domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Dir:         dir,
		File:        "input.csv",
		Granularity: domain.GranularityDaily,
		Mode:        domain.AggSum,
		Ticker:      "ABC",
	}
}

const analyzerCSV = "Date,Symbol,Price,Volume\n2023-01-03,ABC,10.00,100\n2023-01-03,ABC,12.00,50\n2023-01-04,ABC,11.00,75\n"

func TestAnalyzer_BuildChartData(t *testing.T) {
	t.Run("core series with reference overlay", func(t *testing.T) {
		dir, _ := splitPath(t, writeCSV(t, analyzerCSV))
		provider := &fakeProvider{points: []domain.PricePoint{{Date: day(2023, 1, 3), Close: 10.5}}}

		data, err := NewAnalyzer(provider).BuildChartData(context.Background(), analysisRequest(dir))
		require.NoError(t, err)
		require.Len(t, data.Series.Points, 2)
		assert.Equal(t, []float64{150, 75}, []float64{data.Series.Points[0].Volume, data.Series.Points[1].Volume})
		assert.Equal(t, 1, provider.calls)
		assert.Len(t, data.Reference, 1)
	})

	t.Run("provider failure keeps the core result", func(t *testing.T) {
		dir, _ := splitPath(t, writeCSV(t, analyzerCSV))
		provider := &fakeProvider{err: errors.New("upstream down")}

		data, err := NewAnalyzer(provider).BuildChartData(context.Background(), analysisRequest(dir))
		require.NoError(t, err)
		assert.Len(t, data.Series.Points, 2)
		assert.Empty(t, data.Reference)
	})

	t.Run("nil provider skips enrichment", func(t *testing.T) {
		dir, _ := splitPath(t, writeCSV(t, analyzerCSV))
		data, err := NewAnalyzer(nil).BuildChartData(context.Background(), analysisRequest(dir))
		require.NoError(t, err)
		assert.Empty(t, data.Reference)
	})

	t.Run("empty selection propagates", func(t *testing.T) {
		dir, _ := splitPath(t, writeCSV(t, analyzerCSV))
		req := analysisRequest(dir)
		req.Ticker = "ZZZ"
		_, err := NewAnalyzer(nil).BuildChartData(context.Background(), req)
		var selErr *domain.SelectionError
		require.ErrorAs(t, err, &selErr)
	})
}
