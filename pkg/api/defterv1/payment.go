package defterv1

import "github.com/shopspring/decimal"

type RecordPaymentRequest struct {
	GroupID      string          `json:"group_id" validate:"required"`
	FromPersonID string          `json:"from_person_id" validate:"required"`
	ToPersonID   string          `json:"to_person_id" validate:"required,nefield=FromPersonID"`
	Amount       decimal.Decimal `json:"amount" validate:"positive_decimal"`
	// PaidAt defaults to today.
	PaidAt string `json:"paid_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

type RecordPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

const (
	ActionConfirm = "confirm"
	ActionReject  = "reject"
)

type ResolvePaymentRequest struct {
	PaymentID string `json:"payment_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=confirm reject"`
}

type ResolvePaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Month   string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed rejected"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type PendingCountRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type PendingCountResponse struct {
	Count int `json:"count"`
}
