package swaps

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// WriteOpenPositions exports open positions as CSV. Currency columns are the
// union of currencies seen across all positions, sorted, so the header is
// stable for a given input.
func WriteOpenPositions(path string, positions []domain.OpenPosition) error {
	currencies := map[string]bool{}
	for _, p := range positions {
		for c := range p.Notional {
			currencies[c] = true
		}
		for c := range p.Quantity {
			currencies[c] = true
		}
	}
	sorted := make([]string, 0, len(currencies))
	for c := range currencies {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Root ID", "Last Dissemination ID", "Last Action", "Event Timestamp", "Execution Timestamp", "Expiration Date", "Swap Type"}
	for _, c := range sorted {
		header = append(header, "Notional_"+c)
	}
	for _, c := range sorted {
		header = append(header, "Quantity_"+c)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range positions {
		row := []string{
			p.RootID,
			p.LastID,
			p.LastAction,
			formatTime(p.EventTimestamp),
			formatTime(p.ExecutionTime),
			p.ExpirationDate,
			p.ProductName,
		}
		for _, c := range sorted {
			row = append(row, formatAmount(p.Notional[c]))
		}
		for _, c := range sorted {
			row = append(row, formatAmount(p.Quantity[c]))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
