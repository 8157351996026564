package model

import "github.com/shopspring/decimal"

// MicroPerUnit is the base-unit scale: all on-chain amounts are integers
// scaled by 10^6.
const MicroPerUnit = 1_000_000

// MicroToReadable converts a base-unit amount to its readable value.
func MicroToReadable(micro uint64) float64 {
	return float64(micro) / MicroPerUnit
}

// ReadableToMicro converts a readable amount to base units, truncating
// anything below one micro unit.
func ReadableToMicro(amount float64) uint64 {
	if amount <= 0 {
		return 0
	}
	return uint64(amount * MicroPerUnit)
}

// FormatAmount renders a readable amount with at most six fractional digits.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).Round(6).String()
}
