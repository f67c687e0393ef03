package calculator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/defter/internal/money"
)

func TestComputeBalances(t *testing.T) {
	t.Run("two person purchase", func(t *testing.T) {
		balances := ComputeBalances([]Purchase{
			purchase("p1", "100.00", split("alice", "70.00"), split("bob", "30.00")),
		}, DefaultOptions())

		require.Len(t, balances, 2)
		assert.Equal(t, Balance{PersonID: "alice", PersonName: "Alice", Paid: 7000, Owed: 5000, Net: 2000}, balances[0])
		assert.Equal(t, Balance{PersonID: "bob", PersonName: "Bob", Paid: 3000, Owed: 5000, Net: -2000}, balances[1])
	})

	t.Run("aggregates across purchases", func(t *testing.T) {
		balances := ComputeBalances([]Purchase{
			purchase("p1", "90.00", split("alice", "90.00"), split("bob", "0"), split("carol", "0")),
			purchase("p2", "60.00", split("bob", "60.00"), split("alice", "0")),
		}, DefaultOptions())

		nets := netByPerson(balances)
		assert.Equal(t, money.MustParse("30.00"), nets["alice"])
		assert.Equal(t, money.Zero, nets["bob"])
		assert.Equal(t, money.MustParse("-30.00"), nets["carol"])
	})

	t.Run("sorted by net descending with ties in first-appearance order", func(t *testing.T) {
		balances := ComputeBalances([]Purchase{
			purchase("p1", "40.00", split("carol", "0"), split("alice", "20.00"), split("bob", "20.00"), split("dave", "0")),
		}, DefaultOptions())

		ids := make([]string, len(balances))
		for i, b := range balances {
			ids[i] = b.PersonID
		}
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, ids)
	})

	t.Run("skips purchases without splits", func(t *testing.T) {
		balances := ComputeBalances([]Purchase{
			{ID: "empty", Total: money.MustParse("50.00")},
			purchase("p1", "10.00", split("alice", "10.00")),
		}, DefaultOptions())

		require.Len(t, balances, 1)
		assert.Equal(t, money.Zero, balances[0].Net)
	})

	t.Run("stale declared total", func(t *testing.T) {
		p := purchase("p1", "10.00", split("alice", "70.00"), split("bob", "30.00"))

		trusted := netByPerson(ComputeBalances([]Purchase{p}, DefaultOptions()))
		assert.Equal(t, money.MustParse("20.00"), trusted["alice"])

		raw := netByPerson(ComputeBalances([]Purchase{p}, Options{MinTransfer: DefaultMinTransfer}))
		assert.Equal(t, money.MustParse("65.00"), raw["alice"])
		assert.Equal(t, money.MustParse("25.00"), raw["bob"])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ComputeBalances(nil, DefaultOptions()))
	})
}

func TestComputeBalancesNetSumsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	purchases := randomPurchases(rng, 200)

	var sum money.Cents
	for _, b := range ComputeBalances(purchases, DefaultOptions()) {
		assert.Equal(t, b.Paid-b.Owed, b.Net)
		sum += b.Net
	}
	assert.Equal(t, money.Zero, sum)
}

func TestComputeBalancesRoundingNoiseIsBounded(t *testing.T) {
	// Declared totals one cent off the split sum are kept, so each purchase
	// may leave at most one cent of noise.
	purchases := []Purchase{
		purchase("p1", "100.01", split("alice", "100.00"), split("bob", "0"), split("carol", "0")),
		purchase("p2", "9.99", split("bob", "10.00"), split("dave", "0")),
		purchase("p3", "33.33", split("carol", "33.33"), split("alice", "0")),
	}

	var sum money.Cents
	for _, b := range ComputeBalances(purchases, DefaultOptions()) {
		sum += b.Net
	}
	assert.LessOrEqual(t, sum.Abs(), money.Cents(len(purchases)))
}

func TestSettleBalances(t *testing.T) {
	t.Run("single debtor pays single creditor", func(t *testing.T) {
		balances := ComputeBalances([]Purchase{
			purchase("p1", "100.00", split("alice", "70.00"), split("bob", "30.00")),
		}, DefaultOptions())

		transfers := SettleBalances(balances, DefaultOptions())
		require.Len(t, transfers, 1)
		assert.Equal(t, transfer("bob", "alice", "20.00"), transfers[0])
	})

	t.Run("largest debts are matched with largest credits", func(t *testing.T) {
		balances := []Balance{
			{PersonID: "alice", PersonName: "Alice", Net: money.MustParse("100.00")},
			{PersonID: "bob", PersonName: "Bob", Net: money.MustParse("50.00")},
			{PersonID: "carol", PersonName: "Carol", Net: money.MustParse("-30.00")},
			{PersonID: "dave", PersonName: "Dave", Net: money.MustParse("-120.00")},
		}

		transfers := SettleBalances(balances, DefaultOptions())
		assert.Equal(t, []Transfer{
			transfer("dave", "alice", "100.00"),
			transfer("dave", "bob", "20.00"),
			transfer("carol", "bob", "30.00"),
		}, transfers)
	})

	t.Run("moves below the visibility floor are suppressed", func(t *testing.T) {
		balances := []Balance{
			{PersonID: "alice", PersonName: "Alice", Net: money.MustParse("30.00")},
			{PersonID: "bob", PersonName: "Bob", Net: money.MustParse("-15.00")},
			{PersonID: "carol", PersonName: "Carol", Net: money.MustParse("-15.00")},
		}

		assert.Empty(t, SettleBalances(balances, DefaultOptions()))
		assert.Len(t, SettleBalances(balances, Options{MinTransfer: money.MustParse("10.00")}), 2)
	})

	t.Run("one cent balances are ignored", func(t *testing.T) {
		balances := []Balance{
			{PersonID: "alice", PersonName: "Alice", Net: 1},
			{PersonID: "bob", PersonName: "Bob", Net: -1},
		}
		assert.Empty(t, SettleBalances(balances, Options{MinTransfer: 1}))
	})

	t.Run("does not modify input", func(t *testing.T) {
		balances := []Balance{
			{PersonID: "bob", PersonName: "Bob", Net: money.MustParse("-40.00")},
			{PersonID: "alice", PersonName: "Alice", Net: money.MustParse("40.00")},
		}
		before := append([]Balance(nil), balances...)
		SettleBalances(balances, DefaultOptions())
		assert.Equal(t, before, balances)
	})
}

func TestSettleBalancesDrivesNetsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	opts := Options{MinTransfer: 1, TrustSplitSum: true}

	for round := 0; round < 20; round++ {
		balances := ComputeBalances(randomPurchases(rng, 15), opts)
		transfers := SettleBalances(balances, opts)

		nets := netByPerson(balances)
		for _, tr := range transfers {
			assert.Positive(t, int64(tr.Amount))
			nets[tr.FromID] += tr.Amount
			nets[tr.ToID] -= tr.Amount
		}

		// Leftovers come only from one-cent balances the matcher ignores.
		bound := money.Cents(len(balances))
		for id, net := range nets {
			assert.LessOrEqual(t, net.Abs(), bound, "round %d: %s left with %s", round, id, net)
		}

		// A debtor/creditor graph over n people never needs more than n-1 edges.
		if len(balances) > 0 {
			assert.LessOrEqual(t, len(transfers), len(balances)-1)
		}
	}
}

func TestSettleBalancesWithinVisibilityFloor(t *testing.T) {
	balances := ComputeBalances([]Purchase{
		purchase("p1", "300.00", split("alice", "300.00"), split("bob", "0"), split("carol", "0")),
		purchase("p2", "120.00", split("bob", "120.00"), split("dave", "0")),
		purchase("p3", "75.50", split("carol", "25.50"), split("dave", "50.00")),
	}, DefaultOptions())

	opts := DefaultOptions()
	nets := netByPerson(balances)
	for _, tr := range SettleBalances(balances, opts) {
		nets[tr.FromID] += tr.Amount
		nets[tr.ToID] -= tr.Amount
	}
	for id, net := range nets {
		assert.Less(t, net.Abs(), opts.MinTransfer, "%s left with %s", id, net)
	}
}
