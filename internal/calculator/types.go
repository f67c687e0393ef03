package calculator

import "github.com/mmynk/defter/internal/money"

// UnknownName is the display name used for a participant the caller did not
// supply a name for.
const UnknownName = "Unknown"

// Split is one participant's contribution to a purchase.
type Split struct {
	PersonID   string      `json:"person_id"`
	PersonName string      `json:"person_name"`
	Amount     money.Cents `json:"amount"`
}

// Purchase is a shared expense split equally across its participants.
// Split order matters: equal-share remainders go to the earliest splits.
type Purchase struct {
	ID     string      `json:"id"`
	Total  money.Cents `json:"total_amount"`
	Splits []Split     `json:"splits"`
}

// Balance is a participant's aggregated position.
// Net is positive when the group owes the participant money.
type Balance struct {
	PersonID   string      `json:"person_id"`
	PersonName string      `json:"person_name"`
	Paid       money.Cents `json:"paid"`
	Owed       money.Cents `json:"owed"`
	Net        money.Cents `json:"net"`
}

// Transfer is a suggested payment: From owes To the Amount.
type Transfer struct {
	FromID   string      `json:"from_id"`
	FromName string      `json:"from_name"`
	ToID     string      `json:"to_id"`
	ToName   string      `json:"to_name"`
	Amount   money.Cents `json:"amount"`
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusConfirmed PaymentStatus = "confirmed"
	StatusRejected  PaymentStatus = "rejected"
)

// Payment is a real transfer of money between two participants.
// Only confirmed payments affect balances and transfers.
type Payment struct {
	FromID string        `json:"from_person_id"`
	ToID   string        `json:"to_person_id"`
	Amount money.Cents   `json:"amount"`
	Status PaymentStatus `json:"status"`
}

// Confirmed reports whether p counts toward settlement.
func (p Payment) Confirmed() bool {
	return p.Status == StatusConfirmed
}

// Options tunes the settlement calculations.
type Options struct {
	// MinTransfer is the visibility floor: suggested transfers smaller than
	// this are suppressed.
	MinTransfer money.Cents

	// TrustSplitSum makes the sum of a purchase's splits authoritative when
	// it disagrees with the declared total by more than one cent.
	TrustSplitSum bool
}

// DefaultMinTransfer is the visibility floor used when none is configured.
var DefaultMinTransfer = money.FromUnits(20)

// DefaultOptions returns the options used by the service unless overridden.
func DefaultOptions() Options {
	return Options{
		MinTransfer:   DefaultMinTransfer,
		TrustSplitSum: true,
	}
}

// floor never drops below one cent so zero-amount transfers are never emitted.
func (o Options) floor() money.Cents {
	if o.MinTransfer < money.Epsilon {
		return money.Epsilon
	}
	return o.MinTransfer
}
