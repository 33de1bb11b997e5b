package swaps

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func writeSwapCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SEC_CUMULATIVE_EQUITIES_2023_05_01.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseRecords(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		path := writeSwapCSV(t, "Dissemination Identifier,Original Dissemination Identifier,Action type,Event type,Event timestamp,Execution Timestamp,Expiration Date,Product name,Notional amount-Leg 1,Notional currency-Leg 1,Total notional quantity-Leg 1\n"+
			"100,,NEWT,TRAD,2023-05-01T14:30:00Z,2023-05-01T14:29:00Z,2025-05-01,Equity:Swap:ContractForDifference:SingleName,\"1,250.50\",usd,75\n")
		records, err := ParseRecords(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, "100", rec.DisseminationID)
		assert.Empty(t, rec.OriginalDisseminationID)
		assert.Equal(t, domain.ActionNew, rec.ActionType)
		assert.Equal(t, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), rec.EventTimestamp)
		assert.Equal(t, 1250.50, rec.NotionalAmount)
		assert.Equal(t, "USD", rec.NotionalCurrency)
		assert.Equal(t, 75.0, rec.NotionalQuantity)
	})

	t.Run("blank optional fields parse to zero values", func(t *testing.T) {
		path := writeSwapCSV(t, "Dissemination Identifier,Action type,Notional amount-Leg 1\n"+
			"200,TERM,not-a-number\n")
		records, err := ParseRecords(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Zero(t, records[0].NotionalAmount)
		assert.True(t, records[0].EventTimestamp.IsZero())
	})

	t.Run("missing identifier column", func(t *testing.T) {
		path := writeSwapCSV(t, "Action type,Event type\nNEWT,TRAD\n")
		_, err := ParseRecords(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 1, parseErr.Line)
	})

	t.Run("row without identifier", func(t *testing.T) {
		path := writeSwapCSV(t, "Dissemination Identifier,Action type\n,NEWT\n")
		_, err := ParseRecords(path)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseRecords(filepath.Join(t.TempDir(), "absent.csv"))
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
