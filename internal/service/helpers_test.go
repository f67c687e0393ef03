package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/metrics"
	"github.com/mmynk/defter/internal/middleware"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/money"
	"github.com/mmynk/defter/internal/storage/sqlite"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

const testUserHeader = "X-Test-User"

// testAuth trusts the user ID the test client puts in testUserHeader.
func testAuth() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if userID := req.Header().Get(testUserHeader); userID != "" {
				ctx = middleware.WithUser(ctx, userID, "")
			}
			return next(ctx, req)
		}
	}
}

// actAs stamps every outgoing request with userID.
func actAs(userID string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set(testUserHeader, userID)
			return next(ctx, req)
		}
	}
}

type testEnv struct {
	t       *testing.T
	store   *sqlite.SQLiteStore
	metrics *metrics.Metrics
	url     string
}

type clients struct {
	groups     defterv1connect.GroupServiceClient
	purchases  defterv1connect.PurchaseServiceClient
	payments   defterv1connect.PaymentServiceClient
	settlement defterv1connect.SettlementServiceClient
}

func testOptions() calculator.Options {
	return calculator.Options{MinTransfer: money.Epsilon, TrustSplitSum: true}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestServer(t *testing.T, opts calculator.Options) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	logger := discardLogger()
	m := metrics.New()
	interceptors := connect.WithInterceptors(testAuth())

	mux := http.NewServeMux()
	mux.Handle(defterv1connect.NewGroupServiceHandler(NewGroupService(store, logger), interceptors))
	mux.Handle(defterv1connect.NewPurchaseServiceHandler(NewPurchaseService(store, opts, logger), interceptors))
	mux.Handle(defterv1connect.NewPaymentServiceHandler(NewPaymentService(store, m, logger), interceptors))
	mux.Handle(defterv1connect.NewSettlementServiceHandler(NewSettlementService(store, opts, m, logger), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{t: t, store: store, metrics: m, url: server.URL}
}

// user registers an account directly in the store.
func (e *testEnv) user(name string) *models.User {
	e.t.Helper()
	u := models.NewUser(name+"@example.com", name, "unused")
	require.NoError(e.t, e.store.CreateUser(context.Background(), u))
	return u
}

// scrape returns the metrics exposition text.
func (e *testEnv) scrape() string {
	e.t.Helper()
	rec := httptest.NewRecorder()
	e.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(e.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func (e *testEnv) as(u *models.User) *clients {
	opt := connect.WithInterceptors(actAs(u.ID))
	return &clients{
		groups:     defterv1connect.NewGroupServiceClient(http.DefaultClient, e.url, opt),
		purchases:  defterv1connect.NewPurchaseServiceClient(http.DefaultClient, e.url, opt),
		payments:   defterv1connect.NewPaymentServiceClient(http.DefaultClient, e.url, opt),
		settlement: defterv1connect.NewSettlementServiceClient(http.DefaultClient, e.url, opt),
	}
}

func (e *testEnv) anonymous() *clients {
	return &clients{
		groups:     defterv1connect.NewGroupServiceClient(http.DefaultClient, e.url),
		purchases:  defterv1connect.NewPurchaseServiceClient(http.DefaultClient, e.url),
		payments:   defterv1connect.NewPaymentServiceClient(http.DefaultClient, e.url),
		settlement: defterv1connect.NewSettlementServiceClient(http.DefaultClient, e.url),
	}
}

// flat is a group owned by alice with bob (linked) and carol (no account).
type flat struct {
	groupID            string
	alice, bob, carol  *v1.Person
	aliceUser, bobUser *models.User
	asAlice, asBob     *clients
}

func (e *testEnv) flat() *flat {
	e.t.Helper()
	ctx := context.Background()

	f := &flat{aliceUser: e.user("alice"), bobUser: e.user("bob")}
	f.asAlice = e.as(f.aliceUser)
	f.asBob = e.as(f.bobUser)

	created, err := f.asAlice.groups.CreateGroup(ctx, connect.NewRequest(&v1.CreateGroupRequest{
		Name:       "Flat",
		PersonName: "Alice",
	}))
	require.NoError(e.t, err)
	f.groupID = created.Msg.Group.ID
	f.alice = created.Msg.Me

	bob, err := f.asAlice.groups.AddPerson(ctx, connect.NewRequest(&v1.AddPersonRequest{
		GroupID:   f.groupID,
		Name:      "Bob",
		UserEmail: f.bobUser.Email,
	}))
	require.NoError(e.t, err)
	f.bob = bob.Msg.Person

	carol, err := f.asAlice.groups.AddPerson(ctx, connect.NewRequest(&v1.AddPersonRequest{
		GroupID: f.groupID,
		Name:    "Carol",
	}))
	require.NoError(e.t, err)
	f.carol = carol.Msg.Person

	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func splitIn(personID, amount string) *v1.SplitInput {
	return &v1.SplitInput{PersonID: personID, Amount: dec(amount)}
}

func codeOf(t *testing.T, err error) connect.Code {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected a connect error, got %v", err)
	return connectErr.Code()
}
