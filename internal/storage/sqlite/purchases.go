package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
)

const purchaseColumns = "id, group_id, date, description, kind, total_cents, created_by, created_at, updated_at"

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	p := &models.Purchase{}
	err := row.Scan(&p.ID, &p.GroupID, &p.Date, &p.Description, &p.Kind, &p.Total, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// windowClause appends date bounds for column to a WHERE clause.
func windowClause(column string, window storage.Window, args []any) (string, []any) {
	var b strings.Builder
	if window.From != "" {
		b.WriteString(" AND " + column + " >= ?")
		args = append(args, window.From)
	}
	if window.To != "" {
		b.WriteString(" AND " + column + " < ?")
		args = append(args, window.To)
	}
	return b.String(), args
}

func insertSplits(ctx context.Context, tx *sql.Tx, purchase *models.Purchase) error {
	for i, split := range purchase.Splits {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO purchase_splits (purchase_id, position, person_id, amount_cents) VALUES (?, ?, ?, ?)",
			purchase.ID, i, split.PersonID, split.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// CreatePurchase persists a purchase and its splits in one transaction.
func (s *SQLiteStore) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if purchase.CreatedAt == 0 {
		purchase.CreatedAt = now
	}
	purchase.UpdatedAt = purchase.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO purchases ("+purchaseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		purchase.ID, purchase.GroupID, purchase.Date, purchase.Description, purchase.Kind,
		purchase.Total, purchase.CreatedBy, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	if err := insertSplits(ctx, tx, purchase); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPurchase retrieves a purchase by ID, including its splits.
func (s *SQLiteStore) GetPurchase(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+purchaseColumns+" FROM purchases WHERE id = ?", purchaseID)
	purchase, err := scanPurchase(row)
	if err != nil {
		return nil, notFound(err, "purchase", purchaseID)
	}

	if err := s.loadSplits(ctx, []*models.Purchase{purchase}); err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListPurchases retrieves a group's purchases with their splits, newest first.
func (s *SQLiteStore) ListPurchases(ctx context.Context, groupID string, window storage.Window) ([]*models.Purchase, error) {
	where, args := windowClause("date", window, []any{groupID})
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+purchaseColumns+" FROM purchases WHERE group_id = ?"+where+" ORDER BY date DESC, created_at DESC, id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	rows.Close()

	if err := s.loadSplits(ctx, purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// loadSplits fills in Splits for every purchase with a single query.
func (s *SQLiteStore) loadSplits(ctx context.Context, purchases []*models.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	byID := make(map[string]*models.Purchase, len(purchases))
	args := make([]any, len(purchases))
	for i, p := range purchases {
		byID[p.ID] = p
		args[i] = p.ID
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT purchase_id, person_id, amount_cents FROM purchase_splits
		 WHERE purchase_id IN (?`+repeatPlaceholder(len(purchases)-1)+`)
		 ORDER BY purchase_id, position`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var purchaseID string
		var split models.Split
		if err := rows.Scan(&purchaseID, &split.PersonID, &split.Amount); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		p := byID[purchaseID]
		p.Splits = append(p.Splits, split)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}
	return nil
}

// UpdatePurchase replaces a purchase's fields and splits.
func (s *SQLiteStore) UpdatePurchase(ctx context.Context, purchase *models.Purchase) error {
	purchase.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE purchases SET date = ?, description = ?, kind = ?, total_cents = ?, updated_at = ?
		 WHERE id = ?`,
		purchase.Date, purchase.Description, purchase.Kind, purchase.Total, purchase.UpdatedAt, purchase.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if err := requireAffected(res, "purchase", purchase.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM purchase_splits WHERE purchase_id = ?", purchase.ID); err != nil {
		return fmt.Errorf("failed to delete old splits: %w", err)
	}
	if err := insertSplits(ctx, tx, purchase); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeletePurchase removes a purchase and its splits.
func (s *SQLiteStore) DeletePurchase(ctx context.Context, purchaseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM purchases WHERE id = ?", purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	return requireAffected(res, "purchase", purchaseID)
}
