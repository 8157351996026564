package swap

import "math/big"

// fee: 0.3% => multiplier 997/1000
var (
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)
)

// ExactAmountOut solves the constant-product invariant
// (reserveIn + amountIn) * (reserveOut - amountOut) >= reserveIn * reserveOut
// for amountOut, with the 0.3% fee taken from the input. All values are
// base units. Returns zero when either reserve is empty.
func ExactAmountOut(amountIn, reserveIn, reserveOut *big.Int) *big.Int {
	if amountIn == nil || reserveIn == nil || reserveOut == nil ||
		amountIn.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return new(big.Int)
	}

	amountInWithFee := new(big.Int).Mul(amountIn, feeMul)
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, feeDen)
	denominator.Add(denominator, amountInWithFee)

	return numerator.Div(numerator, denominator)
}
