package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"0", 0},
		{"1", 100},
		{"1.23", 123},
		{"100.01", 10001},
		{"1.005", 101},
		{"1.004", 100},
		{"-1.005", -101},
		{"-20", -2000},
		{"0.015", 2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FromDecimal(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
		ok   bool
	}{
		{"999999999999.99", MaxAmount, true},
		{"-999999999999.99", -MaxAmount, true},
		{"999999999999.994", MaxAmount, true},
		{"999999999999.995", 0, false},
		{"1000000000000", 0, false},
		{"92233720368547758.08", 0, false},
		{"100000000000000000000", 0, false},
		{"-100000000000000000000", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Convert(decimal.RequireFromString(tc.in))
			if !tc.ok {
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, c := range []Cents{0, 1, 99, 100, 10001, -2000, 123456789} {
		assert.Equal(t, c, FromDecimal(c.Decimal()), "round trip of %d", c)
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{" 2.50 ", 250, true},
		{"-3", -300, true},
		{"abc", 0, false},
		{"", 0, false},
		{"1.2.3", 0, false},
		{"100000000000000000000", 0, false},
		{"92233720368547758.08", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimal(tc.in)
		if !tc.ok {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.01", Cents(10001).String())
	assert.Equal(t, "-20.00", Cents(-2000).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "0.00", Zero.String())
}

func TestNear(t *testing.T) {
	assert.True(t, Cents(100).Near(101))
	assert.True(t, Cents(101).Near(100))
	assert.True(t, Cents(100).Near(100))
	assert.False(t, Cents(100).Near(102))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Amount Cents `json:"amount"`
	}

	out, err := json.Marshal(payload{Amount: 2050})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 20.50}`, string(out))

	var fromNumber payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 20.5}`), &fromNumber))
	assert.Equal(t, Cents(2050), fromNumber.Amount)

	var fromString payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "100.01"}`), &fromString))
	assert.Equal(t, Cents(10001), fromString.Amount)

	var bad payload
	assert.Error(t, json.Unmarshal([]byte(`{"amount": "ten"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"amount": 92233720368547758.08}`), &bad))
}

func TestUnmarshalJSONDirect(t *testing.T) {
	var c Cents
	require.NoError(t, c.UnmarshalJSON([]byte(`"12.50"`)))
	assert.Equal(t, Cents(1250), c)

	require.NoError(t, c.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, Zero, c)

	for _, in := range []string{`"12.50`, `12.50"`, `""`, `"12"50"`} {
		assert.Error(t, c.UnmarshalJSON([]byte(in)), "input %s", in)
	}

	assert.ErrorIs(t, c.UnmarshalJSON([]byte(`"1e30"`)), ErrOutOfRange)
	assert.ErrorIs(t, c.UnmarshalJSON([]byte(`100000000000000000000`)), ErrOutOfRange)
}
