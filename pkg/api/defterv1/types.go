package defterv1

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/money"
)

// Balance is a person's aggregated position in a group.
type Balance = calculator.Balance

// Transfer is a suggested payment between two people.
type Transfer = calculator.Transfer

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
	CreatedAt int64  `json:"created_at"`
}

type Person struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	UserID  string `json:"user_id,omitempty"`
	Active  bool   `json:"active"`
}

// SplitInput is one participant's contribution when creating or editing a
// purchase.
type SplitInput struct {
	PersonID string          `json:"person_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// PurchaseSplit is a stored split together with its equal share.
type PurchaseSplit struct {
	PersonID   string      `json:"person_id"`
	PersonName string      `json:"person_name"`
	Paid       money.Cents `json:"paid"`
	Share      money.Cents `json:"share"`
	Delta      money.Cents `json:"delta"`
}

type Purchase struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"group_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Kind        string          `json:"kind,omitempty"`
	TotalAmount money.Cents     `json:"total_amount"`
	Splits      []PurchaseSplit `json:"splits"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   int64           `json:"created_at"`
	UpdatedAt   int64           `json:"updated_at"`
}

type Payment struct {
	ID           string      `json:"id"`
	GroupID      string      `json:"group_id"`
	FromPersonID string      `json:"from_person_id"`
	FromName     string      `json:"from_name"`
	ToPersonID   string      `json:"to_person_id"`
	ToName       string      `json:"to_name"`
	Amount       money.Cents `json:"amount"`
	PaidAt       string      `json:"paid_at"`
	Note         string      `json:"note,omitempty"`
	Status       string      `json:"status"`
	RequestedBy  string      `json:"requested_by"`
	ConfirmedBy  string      `json:"confirmed_by,omitempty"`
	ConfirmedAt  int64       `json:"confirmed_at,omitempty"`
	CreatedAt    int64       `json:"created_at"`
}
