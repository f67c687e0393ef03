package calculator

import (
	"sort"

	"github.com/mmynk/defter/internal/money"
)

// personLedger accumulates paid/owed per participant in first-appearance order.
type personLedger struct {
	order  []string
	people map[string]*Balance
}

func newPersonLedger() *personLedger {
	return &personLedger{people: make(map[string]*Balance)}
}

func (l *personLedger) get(id, name string) *Balance {
	if b, ok := l.people[id]; ok {
		return b
	}
	b := &Balance{PersonID: id, PersonName: name}
	l.people[id] = b
	l.order = append(l.order, id)
	return b
}

// balances returns fresh Balance values sorted by net descending.
// Ties keep first-appearance order.
func (l *personLedger) balances() []Balance {
	result := make([]Balance, 0, len(l.order))
	for _, id := range l.order {
		b := *l.people[id]
		b.Net = b.Paid - b.Owed
		result = append(result, b)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Net > result[j].Net
	})
	return result
}

// ComputeBalances aggregates paid and owed amounts across purchases.
//
// Algorithm:
//   - Each purchase is apportioned equally among its splits (see Breakdown)
//   - A participant's paid grows by their split amount, owed by their share
//   - Net = paid - owed; purchases without splits are skipped
func ComputeBalances(purchases []Purchase, opts Options) []Balance {
	ledger := newPersonLedger()

	for _, p := range purchases {
		for _, s := range Breakdown(p, opts) {
			b := ledger.get(s.PersonID, s.PersonName)
			b.Paid += s.Paid
			b.Owed += s.Share
		}
	}

	return ledger.balances()
}

// party is one side of a greedy match: a creditor's claim or a debtor's debt.
type party struct {
	id        string
	name      string
	remaining money.Cents
}

// byRemainingDesc orders parties by amount, largest first, keeping input order on ties.
func byRemainingDesc(parties []party) {
	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].remaining > parties[j].remaining
	})
}

// greedyMatch walks creditors and debtors with two cursors, always moving the
// smaller of the two outstanding amounts, and reports every move to emit.
// A side advances once what it has left is within one cent of zero.
// The slices are consumed.
func greedyMatch(creditors, debtors []party, emit func(debtor, creditor party, amount money.Cents)) {
	c, d := 0, 0
	for c < len(creditors) && d < len(debtors) {
		creditor := &creditors[c]
		debtor := &debtors[d]

		amount := money.Min(creditor.remaining, debtor.remaining)
		emit(*debtor, *creditor, amount)

		creditor.remaining -= amount
		debtor.remaining -= amount

		if creditor.remaining <= money.Epsilon {
			c++
		}
		if debtor.remaining <= money.Epsilon {
			d++
		}
	}
}

// SettleBalances suggests the fewest transfers that bring every net balance
// to zero. Per-purchase provenance is discarded; see DirectTransfers for the
// traceable alternative.
//
// Moves smaller than the visibility floor are suppressed from the output but
// still consumed, so a participant's residual can stay below the floor.
func SettleBalances(balances []Balance, opts Options) []Transfer {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Net > money.Epsilon:
			creditors = append(creditors, party{id: b.PersonID, name: b.PersonName, remaining: b.Net})
		case b.Net < -money.Epsilon:
			debtors = append(debtors, party{id: b.PersonID, name: b.PersonName, remaining: -b.Net})
		}
	}
	byRemainingDesc(creditors)
	byRemainingDesc(debtors)

	floor := opts.floor()
	var transfers []Transfer
	greedyMatch(creditors, debtors, func(debtor, creditor party, amount money.Cents) {
		if amount < floor {
			return
		}
		transfers = append(transfers, Transfer{
			FromID:   debtor.id,
			FromName: debtor.name,
			ToID:     creditor.id,
			ToName:   creditor.name,
			Amount:   amount,
		})
	})

	return transfers
}
