package swap

import (
	"math/big"
	"testing"
)

func TestExactAmountOutStaysOnCurve(t *testing.T) {
	amountIn := big.NewInt(10_000_000)
	reserveIn := big.NewInt(1_000_000_000)
	reserveOut := big.NewInt(2_000_000_000)

	out := ExactAmountOut(amountIn, reserveIn, reserveOut)
	if out.Sign() <= 0 {
		t.Fatalf("expected positive output, got %s", out)
	}
	if out.Cmp(reserveOut) >= 0 {
		t.Fatalf("output must be less than the output reserve")
	}

	// With the fee taken from the input the reserve product must not shrink.
	before := new(big.Int).Mul(reserveIn, reserveOut)
	after := new(big.Int).Mul(
		new(big.Int).Add(reserveIn, amountIn),
		new(big.Int).Sub(reserveOut, out),
	)
	if after.Cmp(before) < 0 {
		t.Fatalf("reserve product shrank: %s -> %s", before, after)
	}
}

func TestExactAmountOutBelowSpotQuote(t *testing.T) {
	quote := Quote(QuoteInput{
		ReserveIn:       1_000_000_000,
		ReserveOut:      2_000_000_000,
		AmountIn:        10,
		SlippagePercent: 0.4,
	})

	exact := ExactAmountOut(big.NewInt(10_000_000), big.NewInt(1_000_000_000), big.NewInt(2_000_000_000))
	exactReadable := float64(exact.Uint64()) / 1_000_000

	// The spot-ratio approximation ignores trade-size slippage, so it always
	// quotes at least as much as the exact curve pays out.
	if exactReadable > quote.AmountOut {
		t.Fatalf("exact output %f exceeds spot quote %f", exactReadable, quote.AmountOut)
	}
}

func TestExactAmountOutDegenerateInputs(t *testing.T) {
	zero := big.NewInt(0)
	one := big.NewInt(1_000_000)

	if out := ExactAmountOut(zero, one, one); out.Sign() != 0 {
		t.Fatalf("zero input should yield zero output")
	}
	if out := ExactAmountOut(one, zero, one); out.Sign() != 0 {
		t.Fatalf("empty input reserve should yield zero output")
	}
	if out := ExactAmountOut(one, one, zero); out.Sign() != 0 {
		t.Fatalf("empty output reserve should yield zero output")
	}
	if out := ExactAmountOut(nil, one, one); out.Sign() != 0 {
		t.Fatalf("nil input should yield zero output")
	}
}
