package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/metrics"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

// Transfer strategies, as reported to metrics.
const (
	strategyDirect = "direct"
	strategyGlobal = "global"
)

// SettlementService implements the Connect SettlementService: balances and
// suggested transfers computed from a group's purchases and confirmed payments.
type SettlementService struct {
	defterv1connect.UnimplementedSettlementServiceHandler
	store   storage.Store
	opts    calculator.Options
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewSettlementService creates a new SettlementService. m may be nil.
func NewSettlementService(store storage.Store, opts calculator.Options, m *metrics.Metrics, logger *slog.Logger) *SettlementService {
	return &SettlementService{store: store, opts: opts, metrics: m, logger: logger}
}

// load checks access and reads the ledger for a group and optional month.
// It also returns the person the caller acts as.
func (s *SettlementService) load(ctx context.Context, msg any, groupID, month string) (*ledger, *models.Person, error) {
	if err := validateMessage(msg); err != nil {
		return nil, nil, err
	}
	window, err := monthWindow(month)
	if err != nil {
		return nil, nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	me, err := membership(ctx, s.store, groupID)
	if err != nil {
		return nil, nil, err
	}

	l, err := loadLedger(ctx, s.store, groupID, window)
	if err != nil {
		s.logger.Error("Loading ledger failed", "group_id", groupID, "error", err)
		return nil, nil, connect.NewError(connect.CodeInternal, err)
	}
	return l, me, nil
}

// GetBalances returns every person's paid, owed and net position.
func (s *SettlementService) GetBalances(ctx context.Context, req *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error) {
	s.logger.Info("GetBalances request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

	l, _, err := s.load(ctx, req.Msg, req.Msg.GroupID, req.Msg.Month)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&v1.GetBalancesResponse{
		Balances: nonNil(l.balances(s.opts)),
	}), nil
}

// GetTransfers returns the per-purchase debts still outstanding, netted per
// pair of people.
func (s *SettlementService) GetTransfers(ctx context.Context, req *connect.Request[v1.GetTransfersRequest]) (*connect.Response[v1.GetTransfersResponse], error) {
	s.logger.Info("GetTransfers request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

	l, _, err := s.load(ctx, req.Msg, req.Msg.GroupID, req.Msg.Month)
	if err != nil {
		return nil, err
	}

	transfers := l.transfers(s.opts)
	s.metrics.ObserveTransfers(strategyDirect, len(transfers))

	return connect.NewResponse(&v1.GetTransfersResponse{Transfers: nonNil(transfers)}), nil
}

// GetSettlementPlan returns the fewest transfers that clear every balance.
func (s *SettlementService) GetSettlementPlan(ctx context.Context, req *connect.Request[v1.GetSettlementPlanRequest]) (*connect.Response[v1.GetSettlementPlanResponse], error) {
	s.logger.Info("GetSettlementPlan request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

	l, _, err := s.load(ctx, req.Msg, req.Msg.GroupID, req.Msg.Month)
	if err != nil {
		return nil, err
	}

	plan := l.plan(s.opts)
	s.metrics.ObserveTransfers(strategyGlobal, len(plan))

	return connect.NewResponse(&v1.GetSettlementPlanResponse{Transfers: nonNil(plan)}), nil
}

// GetMySummary splits the outstanding transfers into what the caller is owed
// and what the caller owes.
func (s *SettlementService) GetMySummary(ctx context.Context, req *connect.Request[v1.GetMySummaryRequest]) (*connect.Response[v1.GetMySummaryResponse], error) {
	s.logger.Info("GetMySummary request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

	l, me, err := s.load(ctx, req.Msg, req.Msg.GroupID, req.Msg.Month)
	if err != nil {
		return nil, err
	}

	resp := &v1.GetMySummaryResponse{
		PersonID:    me.ID,
		Receivables: []v1.Transfer{},
		Debts:       []v1.Transfer{},
	}
	for _, t := range l.transfers(s.opts) {
		switch me.ID {
		case t.ToID:
			resp.Receivables = append(resp.Receivables, t)
			resp.OwedToMe += t.Amount
		case t.FromID:
			resp.Debts = append(resp.Debts, t)
			resp.IOwe += t.Amount
		}
	}
	resp.Net = resp.OwedToMe - resp.IOwe

	resp.PendingCount, err = s.store.CountPending(ctx, req.Msg.GroupID, me.ID)
	if err != nil {
		s.logger.Error("GetMySummary failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(resp), nil
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
