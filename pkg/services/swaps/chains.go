// Package swaps reconstructs position chains from disseminated swap events.
// Every amendment or termination references the event it modifies through its
// original dissemination identifier; following those links backwards groups
// all events of one economic position under a single root.
package swaps

import (
	"sort"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// BuildChains groups every dissemination ID under the root it traces to.
// Chains are returned sorted by root ID so repeated runs agree.
func BuildChains(records []domain.SwapRecord) []domain.PositionChain {
	byID := make(map[string]domain.SwapRecord, len(records))
	for _, rec := range records {
		if _, dup := byID[rec.DisseminationID]; !dup {
			byID[rec.DisseminationID] = rec
		}
	}

	members := make(map[string][]string)
	for _, rec := range records {
		root := traceRoot(byID, rec.DisseminationID)
		members[root] = append(members[root], rec.DisseminationID)
	}

	roots := make([]string, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	chains := make([]domain.PositionChain, 0, len(roots))
	for _, root := range roots {
		ids := members[root]
		sort.Strings(ids)
		chains = append(chains, domain.PositionChain{RootID: root, MemberIDs: ids})
	}
	return chains
}

// traceRoot follows original-ID links until they run out. The visited set
// guards against reference cycles in malformed disclosures.
func traceRoot(byID map[string]domain.SwapRecord, id string) string {
	visited := map[string]bool{id: true}
	current := id
	for {
		rec, ok := byID[current]
		if !ok {
			return current
		}
		orig := rec.OriginalDisseminationID
		if orig == "" || visited[orig] {
			return current
		}
		visited[orig] = true
		current = orig
	}
}

// OpenPositions returns the chains that represent live positions: rooted in a
// NEWT event and not closed by a TERM action with an ETRM event type. The
// latest event is the member with the greatest event timestamp.
func OpenPositions(records []domain.SwapRecord, chains []domain.PositionChain) []domain.OpenPosition {
	byID := make(map[string]domain.SwapRecord, len(records))
	for _, rec := range records {
		if _, dup := byID[rec.DisseminationID]; !dup {
			byID[rec.DisseminationID] = rec
		}
	}

	var open []domain.OpenPosition
	for _, chain := range chains {
		root, ok := byID[chain.RootID]
		if !ok || root.ActionType != domain.ActionNew {
			continue
		}

		latest := root
		for _, id := range chain.MemberIDs {
			rec := byID[id]
			if rec.EventTimestamp.After(latest.EventTimestamp) {
				latest = rec
			}
		}
		if latest.ActionType == domain.ActionTerminate && latest.EventType == domain.EventTermination {
			continue
		}

		notional, quantity := aggregateNotional(byID, chain.MemberIDs)
		open = append(open, domain.OpenPosition{
			RootID:         chain.RootID,
			LastID:         latest.DisseminationID,
			LastAction:     latest.ActionType,
			EventTimestamp: latest.EventTimestamp,
			ExecutionTime:  latest.ExecutionTimestamp,
			ExpirationDate: latest.ExpirationDate,
			ProductName:    latest.ProductName,
			Notional:       notional,
			Quantity:       quantity,
		})
	}
	return open
}

// aggregateNotional totals leg-1 notional and quantity by currency across a
// chain. Basket swaps are excluded: their weighting is not disclosed, so any
// total including them would be misleading. Blank currencies bucket as UNK.
func aggregateNotional(byID map[string]domain.SwapRecord, ids []string) (map[string]float64, map[string]float64) {
	notional := make(map[string]float64)
	quantity := make(map[string]float64)
	for _, id := range ids {
		rec := byID[id]
		if rec.ProductName == domain.BasketProduct {
			continue
		}
		currency := rec.NotionalCurrency
		if currency == "" {
			currency = "UNK"
		}
		notional[currency] += rec.NotionalAmount
		quantity[currency] += rec.NotionalQuantity
	}
	return notional, quantity
}
