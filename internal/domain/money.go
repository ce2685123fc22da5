package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AtomicUnitDecimals is the fixed-point scale between the chain's atomic
// unit and the ledger's display unit (wei: 10^18 per token).
const AtomicUnitDecimals = 18

var atomicUnitFactor = decimal.New(1, AtomicUnitDecimals)

// DefaultPlatformFeeRate is the platform's cut of every payment (1%)
var DefaultPlatformFeeRate = decimal.NewFromFloat(0.01)

// ToAtomic converts a display-unit amount to the chain's atomic unit,
// truncating any precision below one atomic unit.
func ToAtomic(amount decimal.Decimal) *big.Int {
	return amount.Mul(atomicUnitFactor).Truncate(0).BigInt()
}

// FromAtomic converts an atomic-unit amount to the ledger's display unit
func FromAtomic(amount *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(amount, 0).Div(atomicUnitFactor)
}

// PlatformFee computes the fee portion of amount at the given rate,
// rounded to the ledger's persisted precision.
func PlatformFee(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(10)
}
