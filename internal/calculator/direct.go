package calculator

import (
	"sort"

	"github.com/mmynk/defter/internal/money"
)

// pairKey identifies an ordered (from, to) pair.
type pairKey struct {
	from string
	to   string
}

// pairLedger sums transfer amounts per ordered pair, remembering the order in
// which pairs were first seen so output is deterministic.
type pairLedger struct {
	order   []pairKey
	seen    map[pairKey]bool
	amounts map[pairKey]money.Cents
	meta    map[pairKey]Transfer
}

func newPairLedger() *pairLedger {
	return &pairLedger{
		seen:    make(map[pairKey]bool),
		amounts: make(map[pairKey]money.Cents),
		meta:    make(map[pairKey]Transfer),
	}
}

func (l *pairLedger) add(t Transfer) {
	key := pairKey{from: t.FromID, to: t.ToID}
	if !l.seen[key] {
		l.seen[key] = true
		l.order = append(l.order, key)
	}
	l.amounts[key] += t.Amount
	l.meta[key] = t
}

func (l *pairLedger) delete(key pairKey) {
	delete(l.amounts, key)
	delete(l.meta, key)
}

// transfers returns every pair at or above floor, largest amount first.
func (l *pairLedger) transfers(floor money.Cents) []Transfer {
	var result []Transfer
	for _, key := range l.order {
		amount, ok := l.amounts[key]
		if !ok || amount < floor {
			continue
		}
		t := l.meta[key]
		t.Amount = amount
		result = append(result, t)
	}
	sortByAmountDesc(result)
	return result
}

func sortByAmountDesc(transfers []Transfer) {
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Amount > transfers[j].Amount
	})
}

// DirectTransfers settles every purchase on its own and merges the results.
//
// Within a purchase, whoever paid more than their equal share is a creditor
// and whoever paid less is a debtor; they are matched greedily. The per-pair
// amounts are then summed across purchases and pairs below the visibility
// floor are dropped. Each suggested transfer can be traced back to concrete
// purchases, at the cost of possibly more transfers than SettleBalances.
func DirectTransfers(purchases []Purchase, opts Options) []Transfer {
	ledger := newPairLedger()

	for _, p := range purchases {
		var creditors, debtors []party
		for _, s := range Breakdown(p, opts) {
			switch {
			case s.Delta > money.Epsilon:
				creditors = append(creditors, party{id: s.PersonID, name: s.PersonName, remaining: s.Delta})
			case s.Delta < -money.Epsilon:
				debtors = append(debtors, party{id: s.PersonID, name: s.PersonName, remaining: -s.Delta})
			}
		}

		greedyMatch(creditors, debtors, func(debtor, creditor party, amount money.Cents) {
			if amount <= money.Epsilon {
				return
			}
			ledger.add(Transfer{
				FromID:   debtor.id,
				FromName: debtor.name,
				ToID:     creditor.id,
				ToName:   creditor.name,
				Amount:   amount,
			})
		})
	}

	return ledger.transfers(opts.floor())
}
