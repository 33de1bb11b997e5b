package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTransactions(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeCSV(t, "Date,Symbol,Price,Volume\n2023-01-03,abc,10.00,100\n2023-01-04,ABC,11.00,75\n")
		rows, err := ParseTransactions(path)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ABC", rows[0].Ticker)
		assert.Equal(t, 10.0, rows[0].Price)
		assert.Equal(t, 100.0, rows[0].Volume)
		assert.Equal(t, day(2023, 1, 3), rows[0].Date)
	})

	t.Run("aliased headers with fails column", func(t *testing.T) {
		path := writeCSV(t, "SETTLEMENT DATE,TICKER,PRICE,QUANTITY,QUANTITY (FAILS)\n20230103,GME,21.50,\"1,200\",300\n")
		rows, err := ParseTransactions(path)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 1200.0, rows[0].Volume)
		assert.Equal(t, 300.0, rows[0].ReportedFails)
	})

	t.Run("invalid date", func(t *testing.T) {
		path := writeCSV(t, "Date,Symbol,Price,Volume\nnot-a-date,ABC,10.00,100\n")
		_, err := ParseTransactions(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("negative volume", func(t *testing.T) {
		path := writeCSV(t, "Date,Symbol,Price,Volume\n2023-01-03,ABC,10.00,-5\n")
		_, err := ParseTransactions(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeCSV(t, "Date,Symbol,Price\n2023-01-03,ABC,10.00\n")
		_, err := ParseTransactions(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "volume")
	})

	t.Run("header only", func(t *testing.T) {
		path := writeCSV(t, "Date,Symbol,Price,Volume\n")
		_, err := ParseTransactions(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseTransactions(filepath.Join(t.TempDir(), "absent.csv"))
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
