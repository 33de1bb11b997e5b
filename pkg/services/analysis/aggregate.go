package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// Aggregate collapses transaction rows into one derived point per time bucket.
// The ticker filter is a case-insensitive exact match; an empty filter keeps
// every row. Zero rows surviving the filter is a SelectionError, never an
// empty series. The result is fully determined by its inputs.
func Aggregate(rows []domain.Transaction, granularity domain.Granularity, mode domain.AggMode, ticker string) (*domain.DerivedSeries, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	filtered := rows
	if ticker != "" {
		filtered = nil
		for _, tx := range rows {
			if tx.Ticker == ticker {
				filtered = append(filtered, tx)
			}
		}
	}
	if len(filtered) == 0 {
		return nil, &domain.SelectionError{Ticker: ticker, Reason: "no rows match the selection"}
	}

	type bucket struct {
		volumes  []float64
		priceSum float64
		fails    float64
		count    int
	}
	buckets := make(map[time.Time]*bucket)
	for _, tx := range filtered {
		key := BucketStart(tx.Date, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.volumes = append(b.volumes, tx.Volume)
		b.priceSum += tx.Price
		b.fails += tx.ReportedFails
		b.count++
	}

	keys := make([]time.Time, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	series := &domain.DerivedSeries{
		Granularity: granularity,
		Mode:        mode,
		Ticker:      ticker,
		Points:      make([]domain.SeriesPoint, 0, len(keys)),
	}
	for _, k := range keys {
		b := buckets[k]
		series.Points = append(series.Points, domain.SeriesPoint{
			Date:          k,
			Volume:        collapse(b.volumes, mode),
			MeanPrice:     b.priceSum / float64(b.count),
			RowCount:      b.count,
			ReportedFails: b.fails,
		})
	}

	simulateFails(series.Points)
	return series, nil
}

// BucketStart maps a date to the start of its bucket: the date itself for
// daily, the ISO week's Monday for weekly, the first of the month for monthly.
func BucketStart(date time.Time, granularity domain.Granularity) time.Time {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch granularity {
	case domain.GranularityWeekly:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case domain.GranularityMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func collapse(values []float64, mode domain.AggMode) float64 {
	switch mode {
	case domain.AggMean:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	case domain.AggMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	default:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	}
}
