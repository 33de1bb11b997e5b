package swaps

import (
	"sort"
	"strings"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// DailyActivity counts NEWT events per execution date, split into all
// products, contracts for difference and everything else, with per-currency
// notional totals alongside. Events without a parseable execution timestamp
// are dropped. Dates ascend.
func DailyActivity(records []domain.SwapRecord) domain.SwapActivity {
	type day struct {
		all, cfd, nonCFD int
		notional         map[string]float64
	}
	days := make(map[time.Time]*day)

	for _, rec := range records {
		if rec.ActionType != domain.ActionNew || rec.ExecutionTimestamp.IsZero() {
			continue
		}
		y, m, d := rec.ExecutionTimestamp.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		entry, ok := days[key]
		if !ok {
			entry = &day{notional: make(map[string]float64)}
			days[key] = entry
		}
		entry.all++
		if IsCFD(rec.ProductName) {
			entry.cfd++
		} else {
			entry.nonCFD++
		}
		if rec.ProductName != domain.BasketProduct && rec.NotionalAmount > 0 {
			currency := rec.NotionalCurrency
			if currency == "" {
				currency = "UNK"
			}
			entry.notional[currency] += rec.NotionalAmount
		}
	}

	dates := make([]time.Time, 0, len(days))
	for k := range days {
		dates = append(dates, k)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	activity := domain.SwapActivity{Dates: dates}
	for _, date := range dates {
		entry := days[date]
		activity.All = append(activity.All, entry.all)
		activity.CFD = append(activity.CFD, entry.cfd)
		activity.NonCFD = append(activity.NonCFD, entry.nonCFD)
		activity.Notional = append(activity.Notional, entry.notional)
	}
	return activity
}

// IsCFD reports whether the product name marks a contract for difference.
func IsCFD(product string) bool {
	return strings.Contains(strings.ToLower(product), "contractfordifference")
}
