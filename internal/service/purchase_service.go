package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/money"
	"github.com/mmynk/defter/internal/storage"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

// PurchaseService implements the Connect PurchaseService
type PurchaseService struct {
	defterv1connect.UnimplementedPurchaseServiceHandler
	store  storage.Store
	opts   calculator.Options
	logger *slog.Logger
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(store storage.Store, opts calculator.Options, logger *slog.Logger) *PurchaseService {
	return &PurchaseService{store: store, opts: opts, logger: logger}
}

// cents converts a request amount, rejecting sub-cent precision and
// magnitudes beyond money.MaxAmount.
func cents(v violations, field string, d decimal.Decimal) money.Cents {
	if !d.Equal(d.Round(2)) {
		v.add(field, "must have at most two decimal places")
	}
	c, err := money.Convert(d)
	if err != nil {
		v.add(field, "is too large (max %s)", money.MaxAmount)
		return 0
	}
	return c
}

// buildSplits validates split inputs against the group's people and the
// declared total. People in keep may be inactive: they were already part of
// the purchase being edited.
func buildSplits(v violations, inputs []*v1.SplitInput, total money.Cents, people map[string]*models.Person, keep map[string]bool) []models.Split {
	splits := make([]models.Split, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	var sum money.Cents
	anyPaid := false

	for i, in := range inputs {
		field := fmt.Sprintf("splits[%d]", i)

		person, ok := people[in.PersonID]
		switch {
		case !ok:
			v.add(field+".person_id", "is not a member of this group")
		case !person.Active && !keep[in.PersonID]:
			v.add(field+".person_id", "is no longer active in this group")
		case seen[in.PersonID]:
			v.add(field+".person_id", "appears more than once")
		}
		seen[in.PersonID] = true

		if in.Amount.IsNegative() {
			v.add(field+".amount", "must not be negative")
		}
		amount := cents(v, field+".amount", in.Amount)
		if amount > 0 {
			anyPaid = true
		}
		sum += amount

		splits = append(splits, models.Split{PersonID: in.PersonID, Amount: amount})
	}

	if !anyPaid {
		v.add("splits", "at least one person must have paid")
	}
	if !sum.Near(total) {
		v.add("total_amount", "splits add up to %s, not %s", sum, total)
	}
	return splits
}

func (s *PurchaseService) groupPeople(ctx context.Context, groupID string) (map[string]*models.Person, error) {
	people, err := s.store.ListPeople(ctx, groupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return peopleByID(people), nil
}

// CreatePurchase records a shared purchase.
func (s *PurchaseService) CreatePurchase(ctx context.Context, req *connect.Request[v1.CreatePurchaseRequest]) (*connect.Response[v1.CreatePurchaseResponse], error) {
	s.logger.Info("CreatePurchase request received",
		"group_id", req.Msg.GroupID,
		"total", req.Msg.TotalAmount.String(),
		"splits_count", len(req.Msg.Splits),
	)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	me, err := membership(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	people, err := s.groupPeople(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	v := violations{}
	total := cents(v, "total_amount", req.Msg.TotalAmount)
	splits := buildSplits(v, req.Msg.Splits, total, people, nil)
	if err := v.err(); err != nil {
		return nil, err
	}

	date := req.Msg.Date
	if date == "" {
		date = today()
	}

	purchase := &models.Purchase{
		GroupID:     req.Msg.GroupID,
		Date:        date,
		Description: strings.TrimSpace(req.Msg.Description),
		Kind:        strings.TrimSpace(req.Msg.Kind),
		Total:       total,
		Splits:      splits,
		CreatedBy:   me.UserID,
	}
	if err := s.store.CreatePurchase(ctx, purchase); err != nil {
		s.logger.Error("CreatePurchase failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Purchase created", "purchase_id", purchase.ID, "group_id", purchase.GroupID)

	return connect.NewResponse(&v1.CreatePurchaseResponse{
		Purchase: purchaseToAPI(purchase, namesFrom(people), s.opts),
	}), nil
}

// GetPurchase retrieves a purchase with each split's equal share.
func (s *PurchaseService) GetPurchase(ctx context.Context, req *connect.Request[v1.GetPurchaseRequest]) (*connect.Response[v1.GetPurchaseResponse], error) {
	s.logger.Info("GetPurchase request received", "purchase_id", req.Msg.PurchaseID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	purchase, err := s.store.GetPurchase(ctx, req.Msg.PurchaseID)
	if err != nil {
		return nil, storeError(err, "purchase")
	}
	if _, err := membership(ctx, s.store, purchase.GroupID); err != nil {
		return nil, err
	}
	people, err := s.groupPeople(ctx, purchase.GroupID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&v1.GetPurchaseResponse{
		Purchase: purchaseToAPI(purchase, namesFrom(people), s.opts),
	}), nil
}

// ListPurchases returns a group's purchases, newest first, optionally
// restricted to one month.
func (s *PurchaseService) ListPurchases(ctx context.Context, req *connect.Request[v1.ListPurchasesRequest]) (*connect.Response[v1.ListPurchasesResponse], error) {
	s.logger.Info("ListPurchases request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	window, err := monthWindow(req.Msg.Month)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if _, err := membership(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	purchases, err := s.store.ListPurchases(ctx, req.Msg.GroupID, window)
	if err != nil {
		s.logger.Error("ListPurchases failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	people, err := s.groupPeople(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	names := namesFrom(people)

	out := make([]*v1.Purchase, len(purchases))
	for i, p := range purchases {
		out[i] = purchaseToAPI(p, names, s.opts)
	}
	return connect.NewResponse(&v1.ListPurchasesResponse{Purchases: out}), nil
}

// UpdatePurchase replaces a purchase's details and splits.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, req *connect.Request[v1.UpdatePurchaseRequest]) (*connect.Response[v1.UpdatePurchaseResponse], error) {
	s.logger.Info("UpdatePurchase request received", "purchase_id", req.Msg.PurchaseID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	purchase, err := s.store.GetPurchase(ctx, req.Msg.PurchaseID)
	if err != nil {
		return nil, storeError(err, "purchase")
	}
	if _, err := membership(ctx, s.store, purchase.GroupID); err != nil {
		return nil, err
	}
	people, err := s.groupPeople(ctx, purchase.GroupID)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(purchase.Splits))
	for _, split := range purchase.Splits {
		keep[split.PersonID] = true
	}

	v := violations{}
	total := cents(v, "total_amount", req.Msg.TotalAmount)
	splits := buildSplits(v, req.Msg.Splits, total, people, keep)
	if err := v.err(); err != nil {
		return nil, err
	}

	purchase.Date = req.Msg.Date
	purchase.Description = strings.TrimSpace(req.Msg.Description)
	purchase.Kind = strings.TrimSpace(req.Msg.Kind)
	purchase.Total = total
	purchase.Splits = splits

	if err := s.store.UpdatePurchase(ctx, purchase); err != nil {
		s.logger.Error("UpdatePurchase failed", "purchase_id", purchase.ID, "error", err)
		return nil, storeError(err, "purchase")
	}

	return connect.NewResponse(&v1.UpdatePurchaseResponse{
		Purchase: purchaseToAPI(purchase, namesFrom(people), s.opts),
	}), nil
}

// DeletePurchase removes a purchase.
func (s *PurchaseService) DeletePurchase(ctx context.Context, req *connect.Request[v1.DeletePurchaseRequest]) (*connect.Response[v1.DeletePurchaseResponse], error) {
	s.logger.Info("DeletePurchase request received", "purchase_id", req.Msg.PurchaseID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	purchase, err := s.store.GetPurchase(ctx, req.Msg.PurchaseID)
	if err != nil {
		return nil, storeError(err, "purchase")
	}
	if _, err := membership(ctx, s.store, purchase.GroupID); err != nil {
		return nil, err
	}

	if err := s.store.DeletePurchase(ctx, purchase.ID); err != nil {
		s.logger.Error("DeletePurchase failed", "purchase_id", purchase.ID, "error", err)
		return nil, storeError(err, "purchase")
	}

	s.logger.Info("Purchase deleted", "purchase_id", purchase.ID)
	return connect.NewResponse(&v1.DeletePurchaseResponse{}), nil
}

func namesFrom(people map[string]*models.Person) map[string]string {
	names := make(map[string]string, len(people))
	for id, p := range people {
		names[id] = p.Name
	}
	return names
}
