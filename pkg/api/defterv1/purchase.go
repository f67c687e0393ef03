package defterv1

import "github.com/shopspring/decimal"

type CreatePurchaseRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	// Date defaults to today.
	Date        string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" validate:"max=200"`
	Kind        string          `json:"kind,omitempty" validate:"max=50"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"positive_decimal"`
	Splits      []*SplitInput   `json:"splits" validate:"required,min=1,dive,required"`
}

type CreatePurchaseResponse struct {
	Purchase *Purchase `json:"purchase"`
}

type GetPurchaseRequest struct {
	PurchaseID string `json:"purchase_id" validate:"required"`
}

type GetPurchaseResponse struct {
	Purchase *Purchase `json:"purchase"`
}

type ListPurchasesRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	// Month restricts the listing to one calendar month (YYYY-MM).
	Month string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type ListPurchasesResponse struct {
	Purchases []*Purchase `json:"purchases"`
}

type UpdatePurchaseRequest struct {
	PurchaseID  string          `json:"purchase_id" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"max=200"`
	Kind        string          `json:"kind,omitempty" validate:"max=50"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"positive_decimal"`
	Splits      []*SplitInput   `json:"splits" validate:"required,min=1,dive,required"`
}

type UpdatePurchaseResponse struct {
	Purchase *Purchase `json:"purchase"`
}

type DeletePurchaseRequest struct {
	PurchaseID string `json:"purchase_id" validate:"required"`
}

type DeletePurchaseResponse struct{}
