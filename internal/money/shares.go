package money

// EqualShares splits total into n shares that differ by at most one cent and
// sum exactly to total.
//
// Every share is floor(total/n); the remainder total mod n is handed out one
// cent at a time to the first shares, so callers that pass splits in a stable
// order always get the same assignment. Returns nil when n < 1.
func EqualShares(total Cents, n int) []Cents {
	if n < 1 {
		return nil
	}

	count := Cents(n)
	base := total / count
	remainder := total % count
	// Go truncates toward zero; shift to floor semantics for negative totals.
	if remainder < 0 {
		base--
		remainder += count
	}

	shares := make([]Cents, n)
	for i := range shares {
		shares[i] = base
		if Cents(i) < remainder {
			shares[i]++
		}
	}
	return shares
}
