package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swapScope/internal/model"
)

func TestLiquidationPriceKnownScenario(t *testing.T) {
	// 111% minimum, 500 minted against 10 collateral.
	got := LiquidationPrice(RatioFromPercent(111), 500, 10)
	assert.InDelta(t, 55.5, got, 1e-12)
}

func TestLiquidationPriceMonotonicity(t *testing.T) {
	minRatio := RatioFromPercent(111)

	prev := LiquidationPrice(minRatio, 100, 50)
	for debt := 200.0; debt <= 1000; debt += 100 {
		cur := LiquidationPrice(minRatio, debt, 50)
		assert.Greater(t, cur, prev, "liquidation price must rise with debt")
		prev = cur
	}

	prev = LiquidationPrice(minRatio, 500, 10)
	for collateral := 20.0; collateral <= 100; collateral += 10 {
		cur := LiquidationPrice(minRatio, 500, collateral)
		assert.Less(t, cur, prev, "liquidation price must fall with collateral")
		prev = cur
	}
}

func TestCollateralToDebtRatio(t *testing.T) {
	got := CollateralToDebtRatio(2.5, 500, 400)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestAvailableCollateralToWithdrawClampsAtZero(t *testing.T) {
	// Unclamped value is 10 - 1.5*500/1 = -740.
	got := AvailableCollateralToWithdraw(1, 10, 500, 1.5)
	assert.Zero(t, got)
}

func TestAvailableCollateralToWithdrawHeadroom(t *testing.T) {
	// Minimum collateral is 1.11*100/2 = 55.5.
	got := AvailableCollateralToWithdraw(2, 100, 100, RatioFromPercent(111))
	assert.InDelta(t, 44.5, got, 1e-12)
}

func TestAvailableCoinsToMint(t *testing.T) {
	// Maximum mintable is 1000*2/2 = 1000.
	got := AvailableCoinsToMint(2, 1000, 200, 2)
	assert.InDelta(t, 800.0, got, 1e-12)

	// Already above the cap: clamped.
	got = AvailableCoinsToMint(1, 10, 500, 1.5)
	assert.Zero(t, got)
}

func TestHeadroomNeverNegative(t *testing.T) {
	prices := []float64{0.01, 0.5, 1, 2, 100}
	debts := []float64{0, 1, 500, 10_000}
	collaterals := []float64{0.001, 1, 10, 5_000}

	for _, p := range prices {
		for _, d := range debts {
			for _, c := range collaterals {
				withdraw := AvailableCollateralToWithdraw(p, c, d, 1.5)
				mint := AvailableCoinsToMint(p, c, d, 1.5)
				assert.GreaterOrEqual(t, withdraw, 0.0)
				assert.GreaterOrEqual(t, mint, 0.0)
			}
		}
	}
}

func TestAssess(t *testing.T) {
	report := Assess(model.VaultPosition{
		Price:            2,
		CollateralAmount: 100,
		MintedDebt:       100,
		MinRatio:         RatioFromPercent(111),
	})

	assert.InDelta(t, 1.11, report.LiquidationPrice, 1e-12)
	assert.InDelta(t, 2.0, report.CollateralToDebtRatio, 1e-12)
	assert.InDelta(t, 44.5, report.WithdrawableCollateral, 1e-12)
	assert.InDelta(t, 100*2/1.11-100, report.MintableDebt, 1e-9)
}

func TestAssessNoDebt(t *testing.T) {
	report := Assess(model.VaultPosition{
		Price:            2,
		CollateralAmount: 100,
		MintedDebt:       0,
		MinRatio:         RatioFromPercent(111),
	})

	// The ratio is undefined without minted debt and stays at zero.
	assert.Zero(t, report.CollateralToDebtRatio)
	assert.Zero(t, report.LiquidationPrice)
	assert.InDelta(t, 100.0, report.WithdrawableCollateral, 1e-12)
}
