package swaps

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// Header names as disseminated in DTCC cumulative equity reports.
var swapColumns = map[string]string{
	"dissemination identifier":          "id",
	"original dissemination identifier": "origID",
	"action type":                       "action",
	"event type":                        "event",
	"event timestamp":                   "eventTS",
	"execution timestamp":               "execTS",
	"expiration date":                   "expiration",
	"product name":                      "product",
	"notional amount-leg 1":             "notional",
	"notional currency-leg 1":           "currency",
	"total notional quantity-leg 1":     "quantity",
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseRecords reads a swap disclosure CSV. Only the identifier column is
// mandatory; events routinely omit notional figures or timestamps and those
// fields parse to their zero values. Rows lacking a dissemination identifier
// are a ParseError since nothing downstream can chain them.
func ParseRecords(path string) ([]domain.SwapRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParseError{File: path, Err: err}
	}
	defer f.Close()
	return parseRecords(path, f)
}

func parseRecords(name string, r io.Reader) ([]domain.SwapRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.ParseError{File: name, Err: fmt.Errorf("read header: %w", err)}
	}
	idx := make(map[string]int)
	for i, h := range header {
		if key, ok := swapColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := idx[key]; !dup {
				idx[key] = i
			}
		}
	}
	if _, ok := idx["id"]; !ok {
		return nil, &domain.ParseError{File: name, Line: 1, Err: fmt.Errorf("header missing dissemination identifier column")}
	}

	get := func(record []string, key string) string {
		i, ok := idx[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var records []domain.SwapRecord
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.ParseError{File: name, Line: line, Err: err}
		}

		id := get(record, "id")
		if id == "" {
			return nil, &domain.ParseError{File: name, Line: line, Err: fmt.Errorf("missing dissemination identifier")}
		}

		records = append(records, domain.SwapRecord{
			DisseminationID:         id,
			OriginalDisseminationID: get(record, "origID"),
			ActionType:              get(record, "action"),
			EventType:               get(record, "event"),
			EventTimestamp:          parseTimestamp(get(record, "eventTS")),
			ExecutionTimestamp:      parseTimestamp(get(record, "execTS")),
			ExpirationDate:          get(record, "expiration"),
			ProductName:             get(record, "product"),
			NotionalAmount:          parseAmount(get(record, "notional")),
			NotionalCurrency:        strings.ToUpper(get(record, "currency")),
			NotionalQuantity:        parseAmount(get(record, "quantity")),
		})
	}
	if len(records) == 0 {
		return nil, &domain.ParseError{File: name, Err: fmt.Errorf("no data rows")}
	}
	return records, nil
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseAmount(raw string) float64 {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
