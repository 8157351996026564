package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swapScope/internal/model"
)

// Store provides Postgres persistence for quote history and vault
// snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InsertQuotes appends quote records.
func (s *Store) InsertQuotes(ctx context.Context, quotes []model.QuoteRecord) error {
	if len(quotes) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, q := range quotes {
		batch.Queue(`
			INSERT INTO quotes (
				quoted_at, token_in, token_out, inverted, slippage_percent,
				amount_in, amount_out, minimum_received, price_impact_percent,
				lp_fee, spot_price, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
		`,
			q.QuotedAt,
			q.TokenIn,
			q.TokenOut,
			q.Inverted,
			q.SlippagePercent,
			q.AmountIn,
			q.AmountOut,
			q.MinimumReceived,
			q.PriceImpactPercent,
			q.LPFee,
			q.SpotPrice,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range quotes {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// InsertVaultSnapshots appends vault snapshots.
func (s *Store) InsertVaultSnapshots(ctx context.Context, snapshots []model.VaultSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		batch.Queue(`
			INSERT INTO vault_snapshots (
				taken_at, price, collateral_amount, minted_debt, min_ratio,
				liquidation_price, collateral_to_debt_ratio,
				withdrawable_collateral, mintable_debt, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now())
		`,
			snap.TakenAt,
			snap.Price,
			snap.CollateralAmount,
			snap.MintedDebt,
			snap.MinRatio,
			snap.LiquidationPrice,
			snap.CollateralToDebtRatio,
			snap.WithdrawableCollateral,
			snap.MintableDebt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
