package model

import "time"

// VaultPosition is an immutable snapshot of a collateralized debt position.
// Price, CollateralAmount, and MintedDebt are readable units; MinRatio is
// the minimum collateral-to-debt ratio as a plain fraction (1.11 = 111%).
type VaultPosition struct {
	Price            float64 `json:"price"`
	CollateralAmount float64 `json:"collateral_amount"`
	MintedDebt       float64 `json:"minted_debt"`
	MinRatio         float64 `json:"min_ratio"`
}

// VaultReport holds the derived risk figures for a position. Ratio is zero
// when the position has no minted debt (the ratio is undefined there).
type VaultReport struct {
	LiquidationPrice       float64 `json:"liquidation_price"`
	CollateralToDebtRatio  float64 `json:"collateral_to_debt_ratio"`
	WithdrawableCollateral float64 `json:"withdrawable_collateral"`
	MintableDebt           float64 `json:"mintable_debt"`
}

// VaultSnapshot is a position plus its report, annotated for storage.
type VaultSnapshot struct {
	TakenAt time.Time `json:"taken_at"`
	VaultPosition
	VaultReport
}
