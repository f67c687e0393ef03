package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/defter/internal/auth"
	"github.com/mmynk/defter/internal/middleware"
	"github.com/mmynk/defter/internal/storage/sqlite"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

func setupAuthServer(t *testing.T) (defterv1connect.AuthServiceClient, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager("test-secret-that-is-long-enough-for-hs256", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	svc := NewAuthService(authenticator, jwtManager, store, discardLogger())

	requireAuth := middleware.RequireAuth(jwtManager,
		defterv1connect.AuthServiceRegisterProcedure,
		defterv1connect.AuthServiceLoginProcedure,
	)

	mux := http.NewServeMux()
	mux.Handle(defterv1connect.NewAuthServiceHandler(svc, connect.WithInterceptors(requireAuth)))
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return defterv1connect.NewAuthServiceClient(http.DefaultClient, server.URL), store
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestRegisterLoginAndCurrentUser(t *testing.T) {
	client, _ := setupAuthServer(t)
	ctx := context.Background()

	registered, err := client.Register(ctx, connect.NewRequest(&v1.RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Password:    "correct horse",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Msg.Token)
	assert.Equal(t, "Alice", registered.Msg.User.DisplayName)

	loggedIn, err := client.Login(ctx, connect.NewRequest(&v1.LoginRequest{
		Email:    "Alice@Example.com",
		Password: "correct horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, registered.Msg.User.ID, loggedIn.Msg.User.ID)

	me, err := client.GetCurrentUser(ctx, withToken(&v1.GetCurrentUserRequest{}, loggedIn.Msg.Token))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Msg.User.Email)
	assert.Equal(t, "Alice", me.Msg.User.DisplayName)
	assert.NotZero(t, me.Msg.User.CreatedAt)
}

func TestRegisterErrors(t *testing.T) {
	client, _ := setupAuthServer(t)
	ctx := context.Background()

	_, err := client.Register(ctx, connect.NewRequest(&v1.RegisterRequest{
		Email: "bob@example.com", DisplayName: "Bob", Password: "password1",
	}))
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   *v1.RegisterRequest
		code  connect.Code
		field string
	}{
		{
			name: "duplicate email",
			req:  &v1.RegisterRequest{Email: "bob@example.com", DisplayName: "Bob", Password: "password2"},
			code: connect.CodeAlreadyExists,
		},
		{
			name:  "weak password",
			req:   &v1.RegisterRequest{Email: "carol@example.com", DisplayName: "Carol", Password: "short"},
			code:  connect.CodeInvalidArgument,
			field: "password",
		},
		{
			name:  "invalid email",
			req:   &v1.RegisterRequest{Email: "carol", DisplayName: "Carol", Password: "password1"},
			code:  connect.CodeInvalidArgument,
			field: "email",
		},
		{
			name:  "missing display name",
			req:   &v1.RegisterRequest{Email: "carol@example.com", Password: "password1"},
			code:  connect.CodeInvalidArgument,
			field: "display_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Register(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, tt.code, codeOf(t, err))
			if tt.field != "" {
				assert.Contains(t, ViolationsFromError(err), tt.field)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	client, _ := setupAuthServer(t)
	ctx := context.Background()

	_, err := client.Register(ctx, connect.NewRequest(&v1.RegisterRequest{
		Email: "bob@example.com", DisplayName: "Bob", Password: "password1",
	}))
	require.NoError(t, err)

	_, err = client.Login(ctx, connect.NewRequest(&v1.LoginRequest{Email: "bob@example.com", Password: "password2"}))
	assert.Equal(t, connect.CodeUnauthenticated, codeOf(t, err))

	_, err = client.Login(ctx, connect.NewRequest(&v1.LoginRequest{Email: "nobody@example.com", Password: "password1"}))
	assert.Equal(t, connect.CodeUnauthenticated, codeOf(t, err))
}

func TestGetCurrentUserRequiresToken(t *testing.T) {
	client, _ := setupAuthServer(t)
	ctx := context.Background()

	_, err := client.GetCurrentUser(ctx, connect.NewRequest(&v1.GetCurrentUserRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, codeOf(t, err))

	_, err = client.GetCurrentUser(ctx, withToken(&v1.GetCurrentUserRequest{}, "garbage"))
	assert.Equal(t, connect.CodeUnauthenticated, codeOf(t, err))
}
