package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/defter/internal/storage"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month string
		want  storage.Window
	}{
		{"", storage.Window{}},
		{"2026-02", storage.Window{From: "2026-02-01", To: "2026-03-01"}},
		{"2025-12", storage.Window{From: "2025-12-01", To: "2026-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			got, err := monthWindow(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := monthWindow("2026-13")
	assert.Error(t, err)
}

func TestViolationsErr(t *testing.T) {
	assert.NoError(t, violations{}.err())

	v := violations{}
	v.add("splits[0].amount", "must not be negative")
	v.add("splits[0].amount", "ignored: first message wins")
	v.add("total_amount", "splits add up to %s, not %s", "9.00", "10.00")

	err := v.err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splits[0].amount: must not be negative; total_amount: splits add up to 9.00, not 10.00")
	assert.Equal(t, map[string]string{
		"splits[0].amount": "must not be negative",
		"total_amount":     "splits add up to 9.00, not 10.00",
	}, ViolationsFromError(err))
}
