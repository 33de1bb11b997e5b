package analysis

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

// Column aliases seen across SEC FTD extracts, broker exports and hand-rolled
// spreadsheets. Matching is case-insensitive on the normalized header.
var (
	dateColumns   = []string{"date", "settlement date", "settlement_date", "trade date"}
	tickerColumns = []string{"ticker", "symbol", "ticker symbol"}
	priceColumns  = []string{"price", "close", "unit price"}
	volumeColumns = []string{"volume", "quantity", "shares"}
	failsColumns  = []string{"quantity (fails)", "fails", "fail quantity", "ftd"}
)

var dateLayouts = []string{"2006-01-02", "20060102", "01/02/2006", "2006/01/02"}

type columnMap struct {
	date   int
	ticker int
	price  int
	volume int
	fails  int
}

// ParseTransactions reads one CSV file into transaction rows. The first
// record must be a header naming at least date, ticker, price and volume
// columns; any row violating the date or non-negativity invariants aborts the
// parse with a ParseError pointing at the offending line.
func ParseTransactions(path string) ([]domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParseError{File: path, Err: err}
	}
	defer f.Close()
	return parseTransactions(path, f)
}

func parseTransactions(name string, r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.ParseError{File: name, Err: fmt.Errorf("read header: %w", err)}
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, &domain.ParseError{File: name, Line: 1, Err: err}
	}

	var rows []domain.Transaction
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
		if isBlank(record) {
			continue
		}

		tx, err := parseRow(record, cols)
		if err != nil {
			return nil, &domain.ParseError{File: name, Line: line, Err: err}
		}
		rows = append(rows, tx)
	}
	if len(rows) == 0 {
		return nil, &domain.ParseError{File: name, Err: fmt.Errorf("no data rows")}
	}
	return rows, nil
}

func parseRow(record []string, cols columnMap) (domain.Transaction, error) {
	var tx domain.Transaction

	date, err := parseDate(field(record, cols.date))
	if err != nil {
		return tx, err
	}
	tx.Date = date
	tx.Ticker = strings.ToUpper(strings.TrimSpace(field(record, cols.ticker)))

	tx.Price, err = parseNonNegative("price", field(record, cols.price))
	if err != nil {
		return tx, err
	}
	tx.Volume, err = parseNonNegative("volume", field(record, cols.volume))
	if err != nil {
		return tx, err
	}

	if cols.fails >= 0 {
		if raw := strings.TrimSpace(field(record, cols.fails)); raw != "" {
			tx.ReportedFails, err = parseNonNegative("fails", raw)
			if err != nil {
				return tx, err
			}
		}
	}
	return tx, nil
}

func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{date: -1, ticker: -1, price: -1, volume: -1, fails: -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.date < 0 && matches(name, dateColumns):
			cols.date = i
		case cols.ticker < 0 && matches(name, tickerColumns):
			cols.ticker = i
		case cols.price < 0 && matches(name, priceColumns):
			cols.price = i
		case cols.volume < 0 && matches(name, volumeColumns):
			cols.volume = i
		case cols.fails < 0 && matches(name, failsColumns):
			cols.fails = i
		}
	}
	var missing []string
	for _, c := range []struct {
		idx  int
		name string
	}{{cols.date, "date"}, {cols.ticker, "ticker"}, {cols.price, "price"}, {cols.volume, "volume"}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func matches(name string, aliases []string) bool {
	for _, a := range aliases {
		if name == a {
			return true
		}
	}
	return false
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func parseNonNegative(what, raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s %v", what, v)
	}
	return v, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
