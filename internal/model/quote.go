package model

import "time"

// SwapQuote holds the derived figures for one swap, all in readable units
// of the respective tokens. A zero AmountOut means no quote could be
// produced (no liquidity or no input amount).
type SwapQuote struct {
	AmountIn           float64 `json:"amount_in"`
	AmountOut          float64 `json:"amount_out"`
	MinimumReceived    float64 `json:"minimum_received"`
	PriceImpactPercent float64 `json:"price_impact_percent"`
	LPFee              float64 `json:"lp_fee"`
	SpotPrice          float64 `json:"spot_price"`
	Inverted           bool    `json:"inverted"`
}

// QuoteRecord is a SwapQuote annotated for storage.
type QuoteRecord struct {
	QuotedAt        time.Time `json:"quoted_at"`
	TokenIn         string    `json:"token_in"`
	TokenOut        string    `json:"token_out"`
	SlippagePercent float64   `json:"slippage_percent"`
	SwapQuote
}
