package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// nowFunc is replaced in tests that depend on today's date.
var nowFunc = time.Now

func today() string {
	return nowFunc().Format(dateLayout)
}

// monthWindow turns "YYYY-MM" into [first day, first day of next month).
// An empty month yields an unbounded window.
func monthWindow(month string) (storage.Window, error) {
	if month == "" {
		return storage.Window{}, nil
	}
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return storage.Window{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return storage.Window{
		From: start.Format(dateLayout),
		To:   start.AddDate(0, 1, 0).Format(dateLayout),
	}, nil
}

// ledger is everything the settlement engine needs for one group and window.
type ledger struct {
	names     map[string]string
	purchases []calculator.Purchase
	// payments are confirmed payments, oldest first.
	payments []calculator.Payment
}

func loadLedger(ctx context.Context, store storage.Store, groupID string, window storage.Window) (*ledger, error) {
	people, err := store.ListPeople(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	purchases, err := store.ListPurchases(ctx, groupID, window)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	payments, err := store.ListPayments(ctx, groupID, window)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	l := &ledger{names: namesByID(people)}

	// Storage lists newest first; the engine consumes history in order.
	slices.Reverse(purchases)
	for _, p := range purchases {
		l.purchases = append(l.purchases, purchaseToCalc(p, l.names))
	}

	slices.Reverse(payments)
	for _, p := range payments {
		if p.Status != models.PaymentConfirmed {
			continue
		}
		l.payments = append(l.payments, paymentToCalc(p))
	}
	return l, nil
}

// balances nets purchases and the payments that actually settle debt.
func (l *ledger) balances(opts calculator.Options) []calculator.Balance {
	direct := calculator.DirectTransfers(l.purchases, opts)
	normalized := calculator.NormalizePayments(direct, l.payments)
	return calculator.ApplyPaymentsToBalances(calculator.ComputeBalances(l.purchases, opts), normalized, l.names)
}

// transfers are the per-purchase debts still outstanding, one per pair.
func (l *ledger) transfers(opts calculator.Options) []calculator.Transfer {
	direct := calculator.DirectTransfers(l.purchases, opts)
	normalized := calculator.NormalizePayments(direct, l.payments)
	remaining := calculator.ApplyPaymentsToTransfers(direct, normalized, l.names, opts)
	return calculator.NetPairTransfers(remaining, opts)
}

// plan is the globally minimal set of transfers clearing every balance.
func (l *ledger) plan(opts calculator.Options) []calculator.Transfer {
	return calculator.SettleBalances(l.balances(opts), opts)
}
