package calculator

import (
	"github.com/mmynk/defter/internal/money"
)

// SplitShare is one participant's position within a single purchase.
type SplitShare struct {
	PersonID   string      `json:"person_id"`
	PersonName string      `json:"person_name"`
	Paid       money.Cents `json:"paid"`
	Share      money.Cents `json:"share"`
	Delta      money.Cents `json:"delta"` // Positive = paid more than their share
}

// EffectiveTotal returns the amount a purchase is apportioned on.
//
// Older purchases can carry a stale declared total. When trustSplitSum is set
// and the splits add up to a positive amount that differs from the declared
// total by more than one cent, the split sum wins.
func EffectiveTotal(p Purchase, trustSplitSum bool) money.Cents {
	var splitSum money.Cents
	for _, s := range p.Splits {
		splitSum += s.Amount
	}

	if trustSplitSum && splitSum > 0 && !splitSum.Near(p.Total) {
		return splitSum
	}
	return p.Total
}

// Breakdown computes every split's equal share of the purchase and how far
// the split's payment is from it. Returns nil for a purchase without splits.
func Breakdown(p Purchase, opts Options) []SplitShare {
	if len(p.Splits) == 0 {
		return nil
	}

	shares := money.EqualShares(EffectiveTotal(p, opts.TrustSplitSum), len(p.Splits))

	result := make([]SplitShare, len(p.Splits))
	for i, s := range p.Splits {
		result[i] = SplitShare{
			PersonID:   s.PersonID,
			PersonName: s.PersonName,
			Paid:       s.Amount,
			Share:      shares[i],
			Delta:      s.Amount - shares[i],
		}
	}
	return result
}
