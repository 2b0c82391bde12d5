package number

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// RatioDecimals implicit scale of every protocol ratio
	RatioDecimals uint8 = 18
)

var hundred = decimal.NewFromInt(100)

// ToHuman raw / 10^decimals, exact
func ToHuman(raw *big.Int, decimals uint8) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// ToRaw human * 10^decimals, truncated toward zero
func ToRaw(human decimal.Decimal, decimals uint8) *big.Int {
	return human.Shift(int32(decimals)).Truncate(0).BigInt()
}

// Ratio human value of a 1e18 fixed point ratio
func Ratio(raw *big.Int) decimal.Decimal {
	return ToHuman(raw, RatioDecimals)
}

// Percentage ratio * 100 of a 1e18 fixed point ratio
func Percentage(raw *big.Int) decimal.Decimal {
	return Ratio(raw).Mul(hundred)
}
