package swaps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func ts(day, hour int) time.Time {
	return time.Date(2023, 5, day, hour, 0, 0, 0, time.UTC)
}

func newt(id string, at time.Time) domain.SwapRecord {
	return domain.SwapRecord{
		DisseminationID: id,
		ActionType:      domain.ActionNew,
		EventTimestamp:  at,
	}
}

func amend(id, origID string, at time.Time) domain.SwapRecord {
	return domain.SwapRecord{
		DisseminationID:         id,
		OriginalDisseminationID: origID,
		ActionType:              "MODI",
		EventTimestamp:          at,
	}
}

func terminate(id, origID string, at time.Time) domain.SwapRecord {
	return domain.SwapRecord{
		DisseminationID:         id,
		OriginalDisseminationID: origID,
		ActionType:              domain.ActionTerminate,
		EventType:               domain.EventTermination,
		EventTimestamp:          at,
	}
}

func TestBuildChains(t *testing.T) {
	t.Run("amendments trace to their root", func(t *testing.T) {
		records := []domain.SwapRecord{
			newt("100", ts(1, 9)),
			amend("101", "100", ts(2, 9)),
			amend("102", "101", ts(3, 9)),
			newt("200", ts(1, 10)),
		}
		chains := BuildChains(records)
		require.Len(t, chains, 2)
		assert.Equal(t, "100", chains[0].RootID)
		assert.Equal(t, []string{"100", "101", "102"}, chains[0].MemberIDs)
		assert.Equal(t, "200", chains[1].RootID)
	})

	t.Run("dangling original reference becomes the root", func(t *testing.T) {
		records := []domain.SwapRecord{amend("101", "absent", ts(1, 9))}
		chains := BuildChains(records)
		require.Len(t, chains, 1)
		assert.Equal(t, "absent", chains[0].RootID)
	})

	t.Run("reference cycles terminate", func(t *testing.T) {
		records := []domain.SwapRecord{
			amend("1", "2", ts(1, 9)),
			amend("2", "1", ts(1, 10)),
		}
		chains := BuildChains(records)
		require.Len(t, chains, 2)
	})
}

func TestOpenPositions(t *testing.T) {
	t.Run("terminated chains are excluded", func(t *testing.T) {
		records := []domain.SwapRecord{
			newt("100", ts(1, 9)),
			terminate("101", "100", ts(2, 9)),
			newt("200", ts(1, 10)),
			amend("201", "200", ts(2, 10)),
		}
		open := OpenPositions(records, BuildChains(records))
		require.Len(t, open, 1)
		assert.Equal(t, "200", open[0].RootID)
		assert.Equal(t, "201", open[0].LastID)
		assert.Equal(t, "MODI", open[0].LastAction)
	})

	t.Run("non-NEWT roots are skipped", func(t *testing.T) {
		records := []domain.SwapRecord{
			{DisseminationID: "300", ActionType: "MODI", EventTimestamp: ts(1, 9)},
			amend("301", "300", ts(2, 9)),
		}
		open := OpenPositions(records, BuildChains(records))
		assert.Empty(t, open)
	})

	t.Run("TERM without ETRM event stays open", func(t *testing.T) {
		records := []domain.SwapRecord{
			newt("400", ts(1, 9)),
			{
				DisseminationID:         "401",
				OriginalDisseminationID: "400",
				ActionType:              domain.ActionTerminate,
				EventType:               "TRAD",
				EventTimestamp:          ts(2, 9),
			},
		}
		open := OpenPositions(records, BuildChains(records))
		require.Len(t, open, 1)
	})

	t.Run("notional totals by currency exclude baskets", func(t *testing.T) {
		rootRec := newt("500", ts(1, 9))
		rootRec.NotionalAmount = 1000
		rootRec.NotionalCurrency = "USD"
		rootRec.NotionalQuantity = 50

		amendRec := amend("501", "500", ts(2, 9))
		amendRec.NotionalAmount = 500
		amendRec.NotionalCurrency = "USD"

		basket := amend("502", "501", ts(3, 9))
		basket.ProductName = domain.BasketProduct
		basket.NotionalAmount = 9999
		basket.NotionalCurrency = "USD"

		unk := amend("503", "502", ts(4, 9))
		unk.NotionalAmount = 25

		records := []domain.SwapRecord{rootRec, amendRec, basket, unk}
		open := OpenPositions(records, BuildChains(records))
		require.Len(t, open, 1)
		assert.Equal(t, 1500.0, open[0].Notional["USD"])
		assert.Equal(t, 50.0, open[0].Quantity["USD"])
		assert.Equal(t, 25.0, open[0].Notional["UNK"])
	})
}

func TestDailyActivity(t *testing.T) {
	records := []domain.SwapRecord{
		{DisseminationID: "1", ActionType: domain.ActionNew, ExecutionTimestamp: ts(1, 9), ProductName: "Equity:Swap:ContractForDifference:SingleName", NotionalAmount: 100, NotionalCurrency: "USD"},
		{DisseminationID: "2", ActionType: domain.ActionNew, ExecutionTimestamp: ts(1, 15), ProductName: "Equity:Swap:PriceReturnBasicPerformance:SingleName", NotionalAmount: 200, NotionalCurrency: "EUR"},
		{DisseminationID: "3", ActionType: domain.ActionNew, ExecutionTimestamp: ts(2, 9), ProductName: "Equity:Swap:ContractForDifference:SingleName", NotionalAmount: 300, NotionalCurrency: "USD"},
		{DisseminationID: "4", ActionType: "MODI", ExecutionTimestamp: ts(2, 10)},
		{DisseminationID: "5", ActionType: domain.ActionNew}, // no execution timestamp
	}
	activity := DailyActivity(records)

	require.Len(t, activity.Dates, 2)
	assert.Equal(t, []int{2, 1}, activity.All)
	assert.Equal(t, []int{1, 1}, activity.CFD)
	assert.Equal(t, []int{1, 0}, activity.NonCFD)
	assert.Equal(t, 100.0, activity.Notional[0]["USD"])
	assert.Equal(t, 200.0, activity.Notional[0]["EUR"])
}

func TestDailyActivity_Deterministic(t *testing.T) {
	records := []domain.SwapRecord{
		{DisseminationID: "1", ActionType: domain.ActionNew, ExecutionTimestamp: ts(3, 9)},
		{DisseminationID: "2", ActionType: domain.ActionNew, ExecutionTimestamp: ts(1, 9)},
	}
	first := DailyActivity(records)
	second := DailyActivity(records)
	assert.Equal(t, first, second)
	assert.True(t, first.Dates[0].Before(first.Dates[1]))
}
