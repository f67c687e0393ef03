package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(nil))
	assert.Equal(t, slog.LevelWarn, levelFor(connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))))
	assert.Equal(t, slog.LevelWarn, levelFor(connect.NewError(connect.CodeNotFound, errors.New("gone"))))
	assert.Equal(t, slog.LevelError, levelFor(connect.NewError(connect.CodeInternal, errors.New("boom"))))
	assert.Equal(t, slog.LevelError, levelFor(errors.New("plain")))
}

type fakeRequest struct {
	connect.AnyRequest
	spec connect.Spec
}

func (r fakeRequest) Spec() connect.Spec { return r.spec }

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("not yours"))
	}
	handler := LoggingInterceptor(logger)(failing)

	ctx := WithUser(context.Background(), "user-1", "alice@example.com")
	_, err := handler(ctx, fakeRequest{spec: connect.Spec{Procedure: "/defter.v1.GroupService/GetGroup"}})
	require.Error(t, err)

	line := buf.String()
	assert.Contains(t, line, "level=WARN")
	assert.Contains(t, line, "procedure=/defter.v1.GroupService/GetGroup")
	assert.Contains(t, line, "user_id=user-1")
	assert.Contains(t, line, "code=permission_denied")
}
