package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/defter/internal/money"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

func recordPayment(t *testing.T, c *clients, req *v1.RecordPaymentRequest) *v1.Payment {
	t.Helper()
	resp, err := c.payments.RecordPayment(context.Background(), connect.NewRequest(req))
	require.NoError(t, err)
	return resp.Msg.Payment
}

func TestRecordPaymentByPayerIsPending(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	p := recordPayment(t, f.asBob, &v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.bob.ID,
		ToPersonID:   f.alice.ID,
		Amount:       dec("12.50"),
		PaidAt:       "2026-03-05",
		Note:         " cash ",
	})

	assert.Equal(t, "pending", p.Status)
	assert.Equal(t, money.MustParse("12.50"), p.Amount)
	assert.Equal(t, "Bob", p.FromName)
	assert.Equal(t, "Alice", p.ToName)
	assert.Equal(t, "2026-03-05", p.PaidAt)
	assert.Equal(t, "cash", p.Note)
	assert.Equal(t, f.bobUser.ID, p.RequestedBy)
	assert.Empty(t, p.ConfirmedBy)
}

func TestRecordPaymentByRecipientIsConfirmed(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	p := recordPayment(t, f.asAlice, &v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.carol.ID,
		ToPersonID:   f.alice.ID,
		Amount:       dec("20"),
	})

	assert.Equal(t, "confirmed", p.Status)
	assert.Equal(t, f.aliceUser.ID, p.ConfirmedBy)
	assert.NotZero(t, p.ConfirmedAt)
	assert.NotEmpty(t, p.PaidAt)
	assert.Contains(t, env.scrape(), `defter_payments_resolved_total{status="confirmed"} 1`)
}

func TestRecordPaymentValidation(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	tests := []struct {
		name  string
		req   *v1.RecordPaymentRequest
		field string
	}{
		{
			name:  "same person",
			req:   &v1.RecordPaymentRequest{GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.bob.ID, Amount: dec("5")},
			field: "to_person_id",
		},
		{
			name:  "zero amount",
			req:   &v1.RecordPaymentRequest{GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("0")},
			field: "amount",
		},
		{
			name:  "negative amount",
			req:   &v1.RecordPaymentRequest{GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("-5")},
			field: "amount",
		},
		{
			name:  "amount beyond cent range",
			req:   &v1.RecordPaymentRequest{GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("92233720368547758.08")},
			field: "amount",
		},
		{
			name:  "unknown person",
			req:   &v1.RecordPaymentRequest{GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: "ghost", Amount: dec("5")},
			field: "to_person_id",
		},
		{
			name: "bad date",
			req: &v1.RecordPaymentRequest{
				GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("5"), PaidAt: "yesterday",
			},
			field: "paid_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.asBob.payments.RecordPayment(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))
			assert.Contains(t, ViolationsFromError(err), tt.field)
		})
	}
}

func TestRecordPaymentRejectsHugeAmount(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	// Recorded by the recipient, so it would be confirmed on the spot.
	_, err := f.asAlice.payments.RecordPayment(ctx, connect.NewRequest(&v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.carol.ID,
		ToPersonID:   f.alice.ID,
		Amount:       dec("92233720368547758.08"),
	}))
	assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))
	assert.Contains(t, ViolationsFromError(err)["amount"], "too large")

	resp, err := f.asAlice.payments.ListPayments(ctx, connect.NewRequest(&v1.ListPaymentsRequest{GroupID: f.groupID}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Payments)

	p := recordPayment(t, f.asAlice, &v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.carol.ID,
		ToPersonID:   f.alice.ID,
		Amount:       money.MaxAmount.Decimal(),
	})
	assert.Equal(t, money.MaxAmount, p.Amount)
}

func TestRecordPaymentOnlyByParties(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	// Bob is neither the payer nor the recipient.
	_, err := f.asBob.payments.RecordPayment(context.Background(), connect.NewRequest(&v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.carol.ID,
		ToPersonID:   f.alice.ID,
		Amount:       dec("5"),
	}))
	assert.Equal(t, connect.CodePermissionDenied, codeOf(t, err))
}

func TestResolvePayment(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	p := recordPayment(t, f.asBob, &v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.bob.ID,
		ToPersonID:   f.alice.ID,
		Amount:       dec("12.50"),
	})

	_, err := f.asBob.payments.ResolvePayment(ctx, connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: p.ID,
		Action:    v1.ActionConfirm,
	}))
	assert.Equal(t, connect.CodePermissionDenied, codeOf(t, err), "the payer cannot confirm their own payment")

	resp, err := f.asAlice.payments.ResolvePayment(ctx, connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: p.ID,
		Action:    v1.ActionConfirm,
	}))
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Msg.Payment.Status)
	assert.Equal(t, f.aliceUser.ID, resp.Msg.Payment.ConfirmedBy)

	_, err = f.asAlice.payments.ResolvePayment(ctx, connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: p.ID,
		Action:    v1.ActionReject,
	}))
	assert.Equal(t, connect.CodeFailedPrecondition, codeOf(t, err))

	_, err = f.asAlice.payments.ResolvePayment(ctx, connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: p.ID,
		Action:    "maybe",
	}))
	assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))

	_, err = f.asAlice.payments.ResolvePayment(ctx, connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: "missing",
		Action:    v1.ActionConfirm,
	}))
	assert.Equal(t, connect.CodeNotFound, codeOf(t, err))
}

func TestRejectPayment(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	p := recordPayment(t, f.asAlice, &v1.RecordPaymentRequest{
		GroupID:      f.groupID,
		FromPersonID: f.alice.ID,
		ToPersonID:   f.bob.ID,
		Amount:       dec("7"),
	})
	require.Equal(t, "pending", p.Status)

	resp, err := f.asBob.payments.ResolvePayment(context.Background(), connect.NewRequest(&v1.ResolvePaymentRequest{
		PaymentID: p.ID,
		Action:    v1.ActionReject,
	}))
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Msg.Payment.Status)
	assert.Contains(t, env.scrape(), `defter_payments_resolved_total{status="rejected"} 1`)
}

func TestListPaymentsAndPendingCount(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	recordPayment(t, f.asBob, &v1.RecordPaymentRequest{
		GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("1"), PaidAt: "2026-01-10",
	})
	recordPayment(t, f.asBob, &v1.RecordPaymentRequest{
		GroupID: f.groupID, FromPersonID: f.bob.ID, ToPersonID: f.alice.ID, Amount: dec("2"), PaidAt: "2026-02-10",
	})
	recordPayment(t, f.asAlice, &v1.RecordPaymentRequest{
		GroupID: f.groupID, FromPersonID: f.carol.ID, ToPersonID: f.alice.ID, Amount: dec("3"), PaidAt: "2026-02-11",
	})

	all, err := f.asBob.payments.ListPayments(ctx, connect.NewRequest(&v1.ListPaymentsRequest{GroupID: f.groupID}))
	require.NoError(t, err)
	require.Len(t, all.Msg.Payments, 3)
	assert.Equal(t, "2026-02-11", all.Msg.Payments[0].PaidAt)

	pending, err := f.asBob.payments.ListPayments(ctx, connect.NewRequest(&v1.ListPaymentsRequest{
		GroupID: f.groupID,
		Status:  "pending",
	}))
	require.NoError(t, err)
	assert.Len(t, pending.Msg.Payments, 2)

	feb, err := f.asBob.payments.ListPayments(ctx, connect.NewRequest(&v1.ListPaymentsRequest{
		GroupID: f.groupID,
		Month:   "2026-02",
		Status:  "pending",
	}))
	require.NoError(t, err)
	require.Len(t, feb.Msg.Payments, 1)
	assert.Equal(t, money.MustParse("2"), feb.Msg.Payments[0].Amount)

	aliceCount, err := f.asAlice.payments.PendingCount(ctx, connect.NewRequest(&v1.PendingCountRequest{GroupID: f.groupID}))
	require.NoError(t, err)
	assert.Equal(t, 2, aliceCount.Msg.Count)

	bobCount, err := f.asBob.payments.PendingCount(ctx, connect.NewRequest(&v1.PendingCountRequest{GroupID: f.groupID}))
	require.NoError(t, err)
	assert.Zero(t, bobCount.Msg.Count)
}
