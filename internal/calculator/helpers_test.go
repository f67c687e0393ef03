package calculator

import (
	"math/rand"
	"strings"

	"github.com/mmynk/defter/internal/money"
)

var testNames = map[string]string{
	"alice": "Alice",
	"bob":   "Bob",
	"carol": "Carol",
	"dave":  "Dave",
	"erin":  "Erin",
	"frank": "Frank",
}

func split(id, amount string) Split {
	return Split{PersonID: id, PersonName: testNames[id], Amount: money.MustParse(amount)}
}

func purchase(id, total string, splits ...Split) Purchase {
	return Purchase{ID: id, Total: money.MustParse(total), Splits: splits}
}

func transfer(from, to, amount string) Transfer {
	return Transfer{
		FromID:   from,
		FromName: testNames[from],
		ToID:     to,
		ToName:   testNames[to],
		Amount:   money.MustParse(amount),
	}
}

func confirmed(from, to, amount string) Payment {
	return Payment{FromID: from, ToID: to, Amount: money.MustParse(amount), Status: StatusConfirmed}
}

// randomPurchases builds purchases whose splits add up exactly to the total.
func randomPurchases(rng *rand.Rand, count int) []Purchase {
	ids := []string{"alice", "bob", "carol", "dave", "erin", "frank"}

	purchases := make([]Purchase, 0, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.Intn(len(ids))
		perm := rng.Perm(len(ids))[:n]

		var total money.Cents
		splits := make([]Split, n)
		for j, idx := range perm {
			amount := money.Cents(0)
			if rng.Intn(3) > 0 {
				amount = money.Cents(rng.Intn(50000))
			}
			total += amount
			splits[j] = Split{PersonID: ids[idx], PersonName: testNames[ids[idx]], Amount: amount}
		}
		purchases = append(purchases, Purchase{
			ID:     strings.Repeat("p", i+1),
			Total:  total,
			Splits: splits,
		})
	}
	return purchases
}

func netByPerson(balances []Balance) map[string]money.Cents {
	nets := make(map[string]money.Cents, len(balances))
	for _, b := range balances {
		nets[b.PersonID] = b.Net
	}
	return nets
}
