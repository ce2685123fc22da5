package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAtomic(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"whole token", "1", "1000000000000000000"},
		{"fractional token", "1.5", "1500000000000000000"},
		{"small fraction", "0.000000000000000001", "1"},
		{"below one atomic unit truncates", "0.0000000000000000019", "1"},
		{"zero", "0", "0"},
		{"large amount", "1000000", "1000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToAtomic(amount).String())
		})
	}
}

func TestFromAtomic(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	amount := FromAtomic(wei)
	assert.True(t, amount.Equal(decimal.RequireFromString("1.5")))
}

func TestToAtomicFromAtomicRoundTrip(t *testing.T) {
	original := decimal.RequireFromString("123.456789")
	assert.True(t, original.Equal(FromAtomic(ToAtomic(original))))
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"default rate", "100", "0.01", "1"},
		{"fractional amount", "1.5", "0.01", "0.015"},
		{"rounds to persisted precision", "0.0000000001", "0.01", "0"},
		{"zero rate", "100", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			rate := decimal.RequireFromString(tt.rate)
			fee := PlatformFee(amount, rate)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", fee, tt.want)
		})
	}
}

func TestPlatformFeeNeverExceedsAmount(t *testing.T) {
	amount := decimal.RequireFromString("42.42")
	fee := PlatformFee(amount, DefaultPlatformFeeRate)
	assert.True(t, fee.LessThan(amount))
	assert.True(t, fee.Sign() > 0)
}
