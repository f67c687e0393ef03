package models

import (
	"errors"

	"github.com/mmynk/defter/internal/money"
)

// ErrPaymentResolved is returned when confirming or rejecting a payment that
// is no longer pending.
var ErrPaymentResolved = errors.New("payment already resolved")

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentRejected:
		return true
	}
	return false
}

// Payment is money handed from one person to another to settle debt.
//
// A payment recorded by its recipient is confirmed immediately. Otherwise it
// stays pending until the recipient confirms or rejects it. Only confirmed
// payments count toward balances.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	GroupID string

	// FromPersonID paid ToPersonID.
	FromPersonID string
	ToPersonID   string

	Amount money.Cents

	// PaidAt is the calendar day the money changed hands (YYYY-MM-DD).
	PaidAt string

	Note string

	Status PaymentStatus

	// RequestedBy is the user that recorded the payment.
	RequestedBy string

	// ConfirmedBy and ConfirmedAt are set once the payment is resolved.
	ConfirmedBy string
	ConfirmedAt int64

	CreatedAt int64
}

// Resolve moves a pending payment to status on behalf of userID.
func (p *Payment) Resolve(status PaymentStatus, userID string, at int64) error {
	if p.Status != PaymentPending {
		return ErrPaymentResolved
	}
	if status != PaymentConfirmed && status != PaymentRejected {
		return errors.New("payment can only be confirmed or rejected")
	}
	p.Status = status
	p.ConfirmedBy = userID
	p.ConfirmedAt = at
	return nil
}
