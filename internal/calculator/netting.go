package calculator

import (
	"github.com/mmynk/defter/internal/money"
)

// NetPairTransfers collapses transfers in both directions between the same two
// participants into a single transfer in the direction of the balance.
// Pairs whose net is below the visibility floor are dropped.
//
// Useful after merging results computed independently, e.g. per time window.
// Running it on its own output returns the same transfers.
func NetPairTransfers(transfers []Transfer, opts Options) []Transfer {
	var order []pairKey
	signed := make(map[pairKey]money.Cents)
	names := make(map[string]string)

	for _, t := range transfers {
		names[t.FromID] = t.FromName
		names[t.ToID] = t.ToName

		// Canonical key has the lexically smaller id first; from->to along the
		// key is positive.
		key := pairKey{from: t.FromID, to: t.ToID}
		amount := t.Amount
		if t.ToID < t.FromID {
			key = pairKey{from: t.ToID, to: t.FromID}
			amount = -amount
		}

		if _, ok := signed[key]; !ok {
			order = append(order, key)
		}
		signed[key] += amount
	}

	floor := opts.floor()
	var result []Transfer
	for _, key := range order {
		amount := signed[key]
		if amount.Abs() < floor {
			continue
		}

		from, to := key.from, key.to
		if amount < 0 {
			from, to = to, from
		}
		result = append(result, Transfer{
			FromID:   from,
			FromName: lookupName(names, from, ""),
			ToID:     to,
			ToName:   lookupName(names, to, ""),
			Amount:   amount.Abs(),
		})
	}

	sortByAmountDesc(result)
	return result
}
