package price

import (
	"math/big"

	"github.com/shopspring/decimal"

	"swapScope/internal/swap"
)

// CentsToReadable converts an oracle price in cents to a readable dollar
// value.
func CentsToReadable(cents uint64) decimal.Decimal {
	return decimal.New(int64(cents), -2)
}

// PoolImplied derives a price from a resolved pair's reserve ratio
// (output reserve over input reserve), rounded to two decimals. A missing
// or empty pool yields zero.
func PoolImplied(lookup swap.PairLookup) decimal.Decimal {
	if !lookup.Found || lookup.ReserveIn == 0 {
		return decimal.Zero
	}
	ratio := decimal.NewFromBigInt(new(big.Int).SetUint64(lookup.ReserveOut), 0).
		Div(decimal.NewFromBigInt(new(big.Int).SetUint64(lookup.ReserveIn), 0))
	return ratio.Round(2)
}
