package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapScope/internal/chain"
	"swapScope/internal/config"
	"swapScope/internal/model"
	"swapScope/internal/price"
	"swapScope/internal/storage/postgres"
	"swapScope/internal/vault"
)

func runVault(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadVault(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Collateral <= 0 {
		return fmt.Errorf("collateral must be positive")
	}
	if cfg.Debt < 0 {
		return fmt.Errorf("debt must not be negative")
	}
	if cfg.MinRatioPercent <= 0 {
		return fmt.Errorf("min-ratio must be positive")
	}
	if cfg.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collateralPrice := cfg.Price
	if collateralPrice == 0 {
		if cfg.Symbol == "" {
			return fmt.Errorf("either price or symbol is required")
		}
		collateralPrice, err = fetchOraclePrice(ctx, cfg, logger)
		if err != nil {
			return err
		}
	}

	position := model.VaultPosition{
		Price:            collateralPrice,
		CollateralAmount: cfg.Collateral,
		MintedDebt:       cfg.Debt,
		MinRatio:         vault.RatioFromPercent(cfg.MinRatioPercent),
	}
	report := vault.Assess(position)

	fmt.Printf("Collateral price:        %s\n", model.FormatAmount(position.Price))
	fmt.Printf("Liquidation price:       %s\n", model.FormatAmount(report.LiquidationPrice))
	if position.MintedDebt > 0 {
		fmt.Printf("Collateral-to-debt:      %s%%\n", model.FormatAmount(report.CollateralToDebtRatio*100))
	} else {
		fmt.Println("Collateral-to-debt:      n/a (no minted debt)")
	}
	fmt.Printf("Withdrawable collateral: %s\n", model.FormatAmount(report.WithdrawableCollateral))
	fmt.Printf("Mintable debt:           %s\n", model.FormatAmount(report.MintableDebt))

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		snapshot := model.VaultSnapshot{
			TakenAt:       time.Now().UTC(),
			VaultPosition: position,
			VaultReport:   report,
		}
		if err := store.InsertVaultSnapshots(ctx, []model.VaultSnapshot{snapshot}); err != nil {
			return fmt.Errorf("store vault snapshot: %w", err)
		}
		logger.Info("vault snapshot stored", zap.String("pg_dsn", redactDSN(cfg.PGDSN)))
	}

	return nil
}

func fetchOraclePrice(ctx context.Context, cfg config.VaultConfig, logger *zap.Logger) (float64, error) {
	if cfg.RPCURL == "" {
		return 0, fmt.Errorf("rpc url is required for an oracle price")
	}
	if !common.IsHexAddress(cfg.OracleContract) {
		return 0, fmt.Errorf("oracle contract address is required")
	}

	client, err := chain.NewClient(ctx, cfg.RPCURL, common.Address{}, common.HexToAddress(cfg.OracleContract))
	if err != nil {
		return 0, fmt.Errorf("connect rpc: %w", err)
	}
	defer client.Close()

	var cents uint64
	err = chain.WithRetry(ctx, cfg.MaxRetries, cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		cents, err = client.PriceCents(ctx, cfg.Symbol)
		if err != nil {
			logger.Warn("oracle price fetch failed", zap.String("symbol", cfg.Symbol), zap.Error(err))
		}
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("oracle price: %w", err)
	}

	readable, _ := price.CentsToReadable(cents).Float64()
	logger.Info("oracle price", zap.String("symbol", cfg.Symbol), zap.Uint64("cents", cents))
	return readable, nil
}
