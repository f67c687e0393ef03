package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
)

var (
	errNotMember    = errors.New("caller is not a member of this group")
	errUnauthorized = errors.New("authentication required")
)

// violations maps a request field (snake_case, dotted for nested fields) to
// what is wrong with it.
type violations map[string]string

func (v violations) add(field, format string, args ...any) {
	if _, ok := v[field]; !ok {
		v[field] = fmt.Sprintf(format, args...)
	}
}

// err returns nil when there are no violations, otherwise an InvalidArgument
// error carrying the violations as a google.protobuf.Struct detail.
func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}

	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	detail := make(map[string]any, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field]
		detail[field] = v[field]
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(parts, "; ")))
	if st, err := structpb.NewStruct(detail); err == nil {
		if d, err := connect.NewErrorDetail(st); err == nil {
			connectErr.AddDetail(d)
		}
	}
	return connectErr
}

// ViolationsFromError extracts field violations attached to an
// InvalidArgument error. Used by clients and tests.
func ViolationsFromError(err error) map[string]string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil
	}
	out := make(map[string]string)
	for _, d := range connectErr.Details() {
		msg, err := d.Value()
		if err != nil {
			continue
		}
		st, ok := msg.(*structpb.Struct)
		if !ok {
			continue
		}
		for k, v := range st.AsMap() {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// storeError converts a storage error into a Connect error.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("%s not found", what))
	case errors.Is(err, models.ErrPaymentResolved):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
