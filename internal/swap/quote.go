package swap

import (
	"math"

	"swapScope/internal/model"
)

const (
	// SizingFeePercent is the fee applied when sizing the output amount.
	SizingFeePercent = 0.4
	// LPFeeRate is the separately published liquidity-provider fee on the
	// input amount. The protocol publishes both figures; they are not the
	// same number and are not reconciled here.
	LPFeeRate = 0.003
	// MinReceivedBuffer shaves a further fixed 3% off the slippage-adjusted
	// minimum before it is submitted on-chain.
	MinReceivedBuffer = 0.97
	// DefaultSlippagePercent is the slippage tolerance used when the user
	// has not chosen one.
	DefaultSlippagePercent = 0.4
)

// QuoteInput is the complete, immutable snapshot a quote is computed from.
// Reserves are base units in caller orientation (see PairLookup); AmountIn
// is readable units of the input token.
type QuoteInput struct {
	ReserveIn       uint64
	ReserveOut      uint64
	AmountIn        float64
	SlippagePercent float64
	Inverted        bool
}

// Quote computes the swap figures from a pool snapshot.
//
// The output is sized from the current spot ratio of the reserves rather
// than the exact constant-product curve, which understates slippage for
// trades that are large relative to pool depth. ExactAmountOut gives the
// curve-exact figure for comparison.
//
// A missing pool (zero reserve) or absent input amount yields an all-zero
// quote, never an error.
func Quote(in QuoteInput) model.SwapQuote {
	quote := model.SwapQuote{Inverted: in.Inverted}
	if in.ReserveIn == 0 || in.ReserveOut == 0 {
		return quote
	}
	if in.AmountIn <= 0 || math.IsNaN(in.AmountIn) || math.IsInf(in.AmountIn, 0) {
		return quote
	}

	spot := float64(in.ReserveOut) / float64(in.ReserveIn)
	slippageFactor := (100 - in.SlippagePercent) / 100

	quote.AmountIn = in.AmountIn
	quote.SpotPrice = spot
	quote.AmountOut = ((100 - SizingFeePercent) / 100) * spot * in.AmountIn
	quote.MinimumReceived = slippageFactor * spot * in.AmountIn * MinReceivedBuffer
	quote.PriceImpactPercent = 100 * in.AmountIn / model.MicroToReadable(in.ReserveIn)
	quote.LPFee = LPFeeRate * in.AmountIn

	return quote
}
