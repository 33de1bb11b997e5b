package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRows() []domain.Transaction {
	return []domain.Transaction{
		{Date: day(2023, 1, 3), Ticker: "ABC", Price: 10.00, Volume: 100},
		{Date: day(2023, 1, 3), Ticker: "ABC", Price: 12.00, Volume: 50},
		{Date: day(2023, 1, 4), Ticker: "ABC", Price: 11.00, Volume: 75},
	}
}

func TestAggregate_Daily(t *testing.T) {
	series, err := Aggregate(sampleRows(), domain.GranularityDaily, domain.AggSum, "ABC")
	require.NoError(t, err)
	require.Len(t, series.Points, 2)

	assert.Equal(t, day(2023, 1, 3), series.Points[0].Date)
	assert.Equal(t, 150.0, series.Points[0].Volume)
	assert.Equal(t, 11.0, series.Points[0].MeanPrice)
	assert.Equal(t, 2, series.Points[0].RowCount)

	assert.Equal(t, day(2023, 1, 4), series.Points[1].Date)
	assert.Equal(t, 75.0, series.Points[1].Volume)
}

func TestAggregate_DailyPointCountEqualsDistinctDates(t *testing.T) {
	rows := []domain.Transaction{
		{Date: day(2023, 2, 1), Ticker: "XYZ", Price: 5, Volume: 10},
		{Date: day(2023, 2, 1), Ticker: "XYZ", Price: 6, Volume: 10},
		{Date: day(2023, 2, 3), Ticker: "XYZ", Price: 7, Volume: 10},
		{Date: day(2023, 2, 7), Ticker: "XYZ", Price: 8, Volume: 10},
		{Date: day(2023, 2, 7), Ticker: "XYZ", Price: 9, Volume: 10},
	}
	series, err := Aggregate(rows, domain.GranularityDaily, domain.AggSum, "")
	require.NoError(t, err)
	assert.Len(t, series.Points, 3) // distinct dates: Feb 1, 3, 7
}

func TestAggregate_Modes(t *testing.T) {
	tests := []struct {
		mode domain.AggMode
		want float64
	}{
		{domain.AggSum, 150},
		{domain.AggMean, 75},
		{domain.AggMax, 100},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			series, err := Aggregate(sampleRows(), domain.GranularityDaily, tc.mode, "ABC")
			require.NoError(t, err)
			assert.Equal(t, tc.want, series.Points[0].Volume)
		})
	}
}

func TestAggregate_EmptySelection(t *testing.T) {
	_, err := Aggregate(sampleRows(), domain.GranularityDaily, domain.AggSum, "ZZZ")
	var selErr *domain.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "ZZZ", selErr.Ticker)
}

func TestAggregate_TickerFilterIsCaseInsensitive(t *testing.T) {
	series, err := Aggregate(sampleRows(), domain.GranularityDaily, domain.AggSum, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", series.Ticker)
	assert.Len(t, series.Points, 2)
}

func TestAggregate_Deterministic(t *testing.T) {
	first, err := Aggregate(sampleRows(), domain.GranularityDaily, domain.AggSum, "ABC")
	require.NoError(t, err)
	second, err := Aggregate(sampleRows(), domain.GranularityDaily, domain.AggSum, "ABC")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregate_WeeklyBucketsStartMonday(t *testing.T) {
	rows := []domain.Transaction{
		{Date: day(2023, 1, 4), Ticker: "ABC", Price: 10, Volume: 100}, // Wednesday
		{Date: day(2023, 1, 6), Ticker: "ABC", Price: 10, Volume: 50},  // Friday, same week
		{Date: day(2023, 1, 9), Ticker: "ABC", Price: 10, Volume: 25},  // next Monday
	}
	series, err := Aggregate(rows, domain.GranularityWeekly, domain.AggSum, "")
	require.NoError(t, err)
	require.Len(t, series.Points, 2)
	assert.Equal(t, day(2023, 1, 2), series.Points[0].Date)
	assert.Equal(t, 150.0, series.Points[0].Volume)
	assert.Equal(t, day(2023, 1, 9), series.Points[1].Date)
}

func TestAggregate_MonthlyBuckets(t *testing.T) {
	rows := []domain.Transaction{
		{Date: day(2023, 1, 4), Ticker: "ABC", Price: 10, Volume: 100},
		{Date: day(2023, 1, 28), Ticker: "ABC", Price: 10, Volume: 50},
		{Date: day(2023, 3, 1), Ticker: "ABC", Price: 10, Volume: 25},
	}
	series, err := Aggregate(rows, domain.GranularityMonthly, domain.AggSum, "")
	require.NoError(t, err)
	require.Len(t, series.Points, 2)
	assert.Equal(t, day(2023, 1, 1), series.Points[0].Date)
	assert.Equal(t, day(2023, 3, 1), series.Points[1].Date)
}

func TestSimulateFails(t *testing.T) {
	t.Run("flat prices stay at the base rate", func(t *testing.T) {
		points := []domain.SeriesPoint{
			{Volume: 1000, MeanPrice: 10},
			{Volume: 1000, MeanPrice: 10},
		}
		simulateFails(points)
		assert.Equal(t, 20.0, points[0].SimulatedFTD)
		assert.Equal(t, 20.0, points[1].SimulatedFTD)
	})

	t.Run("large moves are capped", func(t *testing.T) {
		points := []domain.SeriesPoint{
			{Volume: 1000, MeanPrice: 10},
			{Volume: 1000, MeanPrice: 30}, // +200%, uncapped rate would be 0.42
		}
		simulateFails(points)
		assert.Equal(t, 150.0, points[1].SimulatedFTD)
	})

	t.Run("zero volume yields zero fails", func(t *testing.T) {
		points := []domain.SeriesPoint{{Volume: 0, MeanPrice: 10}}
		simulateFails(points)
		assert.Zero(t, points[0].SimulatedFTD)
	})
}
