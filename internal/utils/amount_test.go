package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimalString(t *testing.T) {
	tests := []struct {
		name     string
		v        *big.Int
		decimals int
		want     string
	}{
		{name: "one unit", v: big.NewInt(10000000), decimals: 7, want: "1.0000000"},
		{name: "trailing digits", v: big.NewInt(12345678), decimals: 7, want: "1.2345678"},
		{name: "below one", v: big.NewInt(1), decimals: 7, want: "0.0000001"},
		{name: "zero", v: big.NewInt(0), decimals: 7, want: "0.0000000"},
		{name: "negative", v: big.NewInt(-50000000), decimals: 7, want: "-5.0000000"},
		{name: "no decimals", v: big.NewInt(42), decimals: 0, want: "42"},
		{name: "nil", v: nil, decimals: 2, want: "0.00"},
		{
			name:     "beyond int64",
			v:        new(big.Int).Mul(big.NewInt(1e18), big.NewInt(1e3)),
			decimals: 7,
			want:     "100000000000000.0000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDecimalString(tt.v, tt.decimals))
		})
	}
}

func TestToLedgerAmount(t *testing.T) {
	got, err := ToLedgerAmount(big.NewInt(10000000))
	require.NoError(t, err)
	assert.Equal(t, "1.0000000", got)

	got, err = ToLedgerAmount(big.NewInt(50000001))
	require.NoError(t, err)
	assert.Equal(t, "5.0000001", got)

	for _, bad := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1), new(big.Int).Lsh(big.NewInt(1), 64)} {
		_, err := ToLedgerAmount(bad)
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	}
}

func TestParseLedgerAmount(t *testing.T) {
	got, err := ParseLedgerAmount("5.0000000")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(50000000), got)

	got, err = ParseLedgerAmount("0.0000001")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), got)

	_, err = ParseLedgerAmount("1.00000001")
	assert.Error(t, err)
}

func TestLedgerAmount_RoundTrip(t *testing.T) {
	for _, v := range []int64{1, 7, 10000000, 123456789012, 9223372036854775807} {
		s, err := ToLedgerAmount(big.NewInt(v))
		require.NoError(t, err)
		back, err := ParseLedgerAmount(s)
		require.NoError(t, err)
		assert.Equal(t, v, back.Int64(), s)
	}
}
