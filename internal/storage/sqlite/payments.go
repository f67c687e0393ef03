package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
)

const paymentColumns = `id, group_id, from_person_id, to_person_id, amount_cents, paid_at, note,
	status, requested_by, confirmed_by, confirmed_at, created_at`

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var note, confirmedBy sql.NullString
	var confirmedAt sql.NullInt64

	err := row.Scan(&p.ID, &p.GroupID, &p.FromPersonID, &p.ToPersonID, &p.Amount, &p.PaidAt, &note,
		&p.Status, &p.RequestedBy, &confirmedBy, &confirmedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.Note = note.String
	p.ConfirmedBy = confirmedBy.String
	p.ConfirmedAt = confirmedAt.Int64
	return p, nil
}

// CreatePayment persists a new payment.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	var confirmedAt any
	if payment.ConfirmedAt != 0 {
		confirmedAt = payment.ConfirmedAt
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payments ("+paymentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		payment.ID, payment.GroupID, payment.FromPersonID, payment.ToPersonID, payment.Amount,
		payment.PaidAt, nullString(payment.Note), string(payment.Status), payment.RequestedBy,
		nullString(payment.ConfirmedBy), confirmedAt, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = ?", paymentID)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, notFound(err, "payment", paymentID)
	}
	return payment, nil
}

// ListPayments retrieves a group's payments, most recent first.
func (s *SQLiteStore) ListPayments(ctx context.Context, groupID string, window storage.Window) ([]*models.Payment, error) {
	where, args := windowClause("paid_at", window, []any{groupID})
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE group_id = ?"+where+" ORDER BY paid_at DESC, created_at DESC, id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// ResolvePayment confirms or rejects a pending payment.
// The status guard in the UPDATE makes concurrent resolutions safe: only one
// of them can match the pending row.
func (s *SQLiteStore) ResolvePayment(ctx context.Context, paymentID string, status models.PaymentStatus, userID string, at int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE payments SET status = ?, confirmed_by = ?, confirmed_at = ?
		 WHERE id = ? AND status = ?`,
		string(status), userID, at, paymentID, string(models.PaymentPending),
	)
	if err != nil {
		return fmt.Errorf("failed to resolve payment: %w", err)
	}

	err = requireAffected(res, "payment", paymentID)
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	// Nothing matched: either the payment is gone or it was already resolved.
	if _, getErr := s.GetPayment(ctx, paymentID); getErr != nil {
		return getErr
	}
	return models.ErrPaymentResolved
}

// CountPending counts pending payments awaiting personID's confirmation.
func (s *SQLiteStore) CountPending(ctx context.Context, groupID, personID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM payments WHERE group_id = ? AND to_person_id = ? AND status = ?",
		groupID, personID, string(models.PaymentPending),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending payments: %w", err)
	}
	return count, nil
}
