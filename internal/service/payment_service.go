package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/defter/internal/metrics"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

var (
	errNotParty     = errors.New("only the payer or the recipient can record a payment")
	errNotRecipient = errors.New("only the recipient can confirm or reject a payment")
)

// PaymentService implements the Connect PaymentService
type PaymentService struct {
	defterv1connect.UnimplementedPaymentServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewPaymentService creates a new PaymentService. m may be nil.
func NewPaymentService(store storage.Store, m *metrics.Metrics, logger *slog.Logger) *PaymentService {
	return &PaymentService{store: store, metrics: m, logger: logger}
}

// RecordPayment records money handed from one person to another.
// A payment recorded by its recipient is confirmed at once; one recorded by
// the payer waits for the recipient.
func (s *PaymentService) RecordPayment(ctx context.Context, req *connect.Request[v1.RecordPaymentRequest]) (*connect.Response[v1.RecordPaymentResponse], error) {
	s.logger.Info("RecordPayment request received",
		"group_id", req.Msg.GroupID,
		"from", req.Msg.FromPersonID,
		"to", req.Msg.ToPersonID,
		"amount", req.Msg.Amount.String(),
	)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	me, err := membership(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	people, err := s.store.ListPeople(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	byID := peopleByID(people)

	v := violations{}
	if _, ok := byID[req.Msg.FromPersonID]; !ok {
		v.add("from_person_id", "is not a member of this group")
	}
	if _, ok := byID[req.Msg.ToPersonID]; !ok {
		v.add("to_person_id", "is not a member of this group")
	}
	amount := cents(v, "amount", req.Msg.Amount)
	if err := v.err(); err != nil {
		return nil, err
	}

	if me.ID != req.Msg.FromPersonID && me.ID != req.Msg.ToPersonID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotParty)
	}

	paidAt := req.Msg.PaidAt
	if paidAt == "" {
		paidAt = today()
	}

	payment := &models.Payment{
		GroupID:      req.Msg.GroupID,
		FromPersonID: req.Msg.FromPersonID,
		ToPersonID:   req.Msg.ToPersonID,
		Amount:       amount,
		PaidAt:       paidAt,
		Note:         strings.TrimSpace(req.Msg.Note),
		Status:       models.PaymentPending,
		RequestedBy:  me.UserID,
	}
	if me.ID == payment.ToPersonID {
		payment.Status = models.PaymentConfirmed
		payment.ConfirmedBy = me.UserID
		payment.ConfirmedAt = nowFunc().Unix()
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		s.logger.Error("RecordPayment failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if payment.Status == models.PaymentConfirmed {
		s.metrics.PaymentResolved(string(payment.Status))
	}

	s.logger.Info("Payment recorded", "payment_id", payment.ID, "status", payment.Status)

	return connect.NewResponse(&v1.RecordPaymentResponse{
		Payment: paymentToAPI(payment, namesByID(people)),
	}), nil
}

// ResolvePayment confirms or rejects a pending payment addressed to the caller.
func (s *PaymentService) ResolvePayment(ctx context.Context, req *connect.Request[v1.ResolvePaymentRequest]) (*connect.Response[v1.ResolvePaymentResponse], error) {
	s.logger.Info("ResolvePayment request received", "payment_id", req.Msg.PaymentID, "action", req.Msg.Action)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	payment, err := s.store.GetPayment(ctx, req.Msg.PaymentID)
	if err != nil {
		return nil, storeError(err, "payment")
	}
	me, err := membership(ctx, s.store, payment.GroupID)
	if err != nil {
		return nil, err
	}
	if me.ID != payment.ToPersonID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotRecipient)
	}

	status := models.PaymentConfirmed
	if req.Msg.Action == v1.ActionReject {
		status = models.PaymentRejected
	}

	at := nowFunc().Unix()
	if err := payment.Resolve(status, me.UserID, at); err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}
	if err := s.store.ResolvePayment(ctx, payment.ID, status, me.UserID, at); err != nil {
		if !errors.Is(err, models.ErrPaymentResolved) {
			s.logger.Error("ResolvePayment failed", "payment_id", payment.ID, "error", err)
		}
		return nil, storeError(err, "payment")
	}
	s.metrics.PaymentResolved(string(status))

	people, err := s.store.ListPeople(ctx, payment.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Payment resolved", "payment_id", payment.ID, "status", status)
	return connect.NewResponse(&v1.ResolvePaymentResponse{
		Payment: paymentToAPI(payment, namesByID(people)),
	}), nil
}

// ListPayments returns a group's payments, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[v1.ListPaymentsRequest]) (*connect.Response[v1.ListPaymentsResponse], error) {
	s.logger.Info("ListPayments request received", "group_id", req.Msg.GroupID, "month", req.Msg.Month)

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

	payments, err := s.store.ListPayments(ctx, req.Msg.GroupID, window)
	if err != nil {
		s.logger.Error("ListPayments failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	people, err := s.store.ListPeople(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	names := namesByID(people)

	out := make([]*v1.Payment, 0, len(payments))
	for _, p := range payments {
		if req.Msg.Status != "" && string(p.Status) != req.Msg.Status {
			continue
		}
		out = append(out, paymentToAPI(p, names))
	}
	return connect.NewResponse(&v1.ListPaymentsResponse{Payments: out}), nil
}

// PendingCount counts payments waiting for the caller's confirmation.
func (s *PaymentService) PendingCount(ctx context.Context, req *connect.Request[v1.PendingCountRequest]) (*connect.Response[v1.PendingCountResponse], error) {
	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	me, err := membership(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountPending(ctx, req.Msg.GroupID, me.ID)
	if err != nil {
		s.logger.Error("PendingCount failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&v1.PendingCountResponse{Count: count}), nil
}
