package models

import "github.com/mmynk/defter/internal/money"

// Purchase is a shared expense paid by one or more people and split equally
// across everyone listed in Splits.
type Purchase struct {
	// ID is the unique identifier for the purchase (UUID format).
	ID string

	GroupID string

	// Date is the calendar day of the purchase (YYYY-MM-DD).
	Date string

	Description string

	// Kind is a free-form category (e.g., "groceries", "rent").
	Kind string

	// Total is the declared purchase amount. It may disagree with the sum of
	// Splits when the purchase was edited; see calculator.EffectiveTotal.
	Total money.Cents

	// Splits are ordered. The equal-share remainder goes to the first ones.
	Splits []Split

	CreatedBy string
	CreatedAt int64
	UpdatedAt int64
}

// Split records how much one person actually paid toward a purchase.
// A zero amount means the person shares the cost without having paid.
type Split struct {
	PersonID string
	Amount   money.Cents
}

// SplitSum returns the total actually paid across all splits.
func (p *Purchase) SplitSum() money.Cents {
	var sum money.Cents
	for _, s := range p.Splits {
		sum += s.Amount
	}
	return sum
}
