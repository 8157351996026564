package vault

import "swapScope/internal/model"

// Ratio arguments throughout this package are plain fractions: 1.11 means
// a 111% collateral-to-debt ratio. RatioFromPercent converts at the
// boundary for callers holding percent values.

// RatioFromPercent converts a percent ratio (111 = 111%) to a fraction.
func RatioFromPercent(pct float64) float64 {
	return pct / 100
}

// LiquidationPrice is the price at which a position with the given minted
// debt and collateral falls to exactly minRatio collateralization.
func LiquidationPrice(minRatio, mintedDebt, collateral float64) float64 {
	return minRatio * mintedDebt / collateral
}

// CollateralToDebtRatio is the current collateralization of a position as
// a fraction. Undefined for zero minted debt; callers must guard that case
// before calling.
func CollateralToDebtRatio(price, mintedDebt, collateral float64) float64 {
	return collateral * price / mintedDebt
}

// AvailableCollateralToWithdraw is the collateral that can be withdrawn
// while keeping the position at or above minRatio, floored at zero.
func AvailableCollateralToWithdraw(price, collateral, mintedDebt, minRatio float64) float64 {
	headroom := collateral - minRatio*mintedDebt/price
	if headroom > 0 {
		return headroom
	}
	return 0
}

// AvailableCoinsToMint is the extra debt that can be minted while keeping
// the position at or above minRatio, floored at zero.
func AvailableCoinsToMint(price, collateral, mintedDebt, minRatio float64) float64 {
	maximum := collateral * price / minRatio
	if mintedDebt < maximum {
		return maximum - mintedDebt
	}
	return 0
}

// Assess derives the full risk report for a position. The ratio field is
// left at zero for positions with no minted debt.
func Assess(pos model.VaultPosition) model.VaultReport {
	report := model.VaultReport{
		WithdrawableCollateral: AvailableCollateralToWithdraw(pos.Price, pos.CollateralAmount, pos.MintedDebt, pos.MinRatio),
		MintableDebt:           AvailableCoinsToMint(pos.Price, pos.CollateralAmount, pos.MintedDebt, pos.MinRatio),
	}
	if pos.CollateralAmount > 0 {
		report.LiquidationPrice = LiquidationPrice(pos.MinRatio, pos.MintedDebt, pos.CollateralAmount)
	}
	if pos.MintedDebt > 0 {
		report.CollateralToDebtRatio = CollateralToDebtRatio(pos.Price, pos.MintedDebt, pos.CollateralAmount)
	}
	return report
}
