package calculator

import (
	"github.com/mmynk/defter/internal/money"
)

func lookupName(names map[string]string, id, fallback string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	if fallback != "" {
		return fallback
	}
	return UnknownName
}

// ApplyPaymentsToBalances folds confirmed payments into balances.
//
// A payment from A to B counts as A having paid more and B having received
// (owing) more, so both nets move toward zero. Participants that only appear
// in payments are added using names for their display name.
func ApplyPaymentsToBalances(balances []Balance, payments []Payment, names map[string]string) []Balance {
	ledger := newPersonLedger()
	for _, b := range balances {
		entry := ledger.get(b.PersonID, b.PersonName)
		entry.Paid += b.Paid
		entry.Owed += b.Owed
	}

	for _, p := range payments {
		if !p.Confirmed() {
			continue
		}
		from := ledger.get(p.FromID, lookupName(names, p.FromID, ""))
		to := ledger.get(p.ToID, lookupName(names, p.ToID, ""))
		from.Paid += p.Amount
		to.Owed += p.Amount
	}

	return ledger.balances()
}

// ApplyPaymentsToTransfers subtracts confirmed payments from the matching
// (from, to) transfers. A pair whose remainder falls below the visibility
// floor is removed entirely.
func ApplyPaymentsToTransfers(transfers []Transfer, payments []Payment, names map[string]string, opts Options) []Transfer {
	ledger := newPairLedger()
	for _, t := range transfers {
		ledger.add(t)
	}

	floor := opts.floor()
	for _, p := range payments {
		if !p.Confirmed() {
			continue
		}
		key := pairKey{from: p.FromID, to: p.ToID}
		remaining := ledger.amounts[key] - p.Amount
		if remaining < floor {
			ledger.delete(key)
			continue
		}

		meta := ledger.meta[key]
		meta.FromName = lookupName(names, p.FromID, meta.FromName)
		meta.ToName = lookupName(names, p.ToID, meta.ToName)
		ledger.meta[key] = meta
		ledger.amounts[key] = remaining
	}

	return ledger.transfers(floor)
}

// NormalizePayments clamps confirmed payments to the debt still outstanding
// for their pair, in the order given.
//
// Outstanding debt per (from, to) pair is seeded from transfers. A payment is
// dropped once its pair is settled; otherwise it is capped at what remains.
// Applying the result can therefore never overshoot what a pair owed, even
// when the same payment was confirmed twice.
func NormalizePayments(transfers []Transfer, payments []Payment) []Payment {
	remaining := make(map[pairKey]money.Cents)
	for _, t := range transfers {
		remaining[pairKey{from: t.FromID, to: t.ToID}] += t.Amount
	}

	var normalized []Payment
	for _, p := range payments {
		if !p.Confirmed() {
			continue
		}
		key := pairKey{from: p.FromID, to: p.ToID}
		left := remaining[key]
		if left <= money.Epsilon {
			continue
		}

		applied := money.Min(left, p.Amount)
		if applied <= money.Epsilon {
			continue
		}

		normalized = append(normalized, Payment{
			FromID: p.FromID,
			ToID:   p.ToID,
			Amount: applied,
			Status: StatusConfirmed,
		})
		remaining[key] = left - applied
	}

	return normalized
}
