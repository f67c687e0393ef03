package defterv1

import "github.com/mmynk/defter/internal/money"

type GetBalancesRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Month   string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type GetBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

// GetTransfersRequest asks for the per-purchase transfers still outstanding
// after confirmed payments, netted per pair of people.
type GetTransfersRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Month   string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type GetTransfersResponse struct {
	Transfers []Transfer `json:"transfers"`
}

// GetSettlementPlanRequest asks for the globally minimal set of transfers
// that clears every balance.
type GetSettlementPlanRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Month   string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type GetSettlementPlanResponse struct {
	Transfers []Transfer `json:"transfers"`
}

type GetMySummaryRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Month   string `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
}

type GetMySummaryResponse struct {
	PersonID    string     `json:"person_id"`
	Receivables []Transfer `json:"receivables"`
	Debts       []Transfer `json:"debts"`
	// OwedToMe and IOwe total Receivables and Debts.
	OwedToMe money.Cents `json:"owed_to_me"`
	IOwe     money.Cents `json:"i_owe"`
	Net      money.Cents `json:"net"`
	// PendingCount is the number of payments awaiting the caller's confirmation.
	PendingCount int `json:"pending_count"`
}
