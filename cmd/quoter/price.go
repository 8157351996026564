package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapScope/internal/chain"
	"swapScope/internal/config"
	"swapScope/internal/price"
	"swapScope/internal/registry"
	"swapScope/internal/swap"
)

func runPrice(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPrice(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Symbol != "" {
		return printOraclePrice(ctx, cfg, logger)
	}
	if cfg.TokenIn != "" && cfg.TokenOut != "" {
		return printPoolImpliedPrice(ctx, cfg, logger)
	}
	return fmt.Errorf("either symbol or an in/out token pair is required")
}

func printOraclePrice(ctx context.Context, cfg config.PriceConfig, logger *zap.Logger) error {
	if !common.IsHexAddress(cfg.OracleContract) {
		return fmt.Errorf("oracle contract address is required")
	}

	client, err := chain.NewClient(ctx, cfg.RPCURL, common.Address{}, common.HexToAddress(cfg.OracleContract))
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
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
		return fmt.Errorf("oracle price: %w", err)
	}

	fmt.Printf("%s: %s\n", cfg.Symbol, price.CentsToReadable(cents))
	return nil
}

func printPoolImpliedPrice(ctx context.Context, cfg config.PriceConfig, logger *zap.Logger) error {
	if !common.IsHexAddress(cfg.SwapContract) {
		return fmt.Errorf("swap contract address is required")
	}

	reg, err := registry.Parse(cfg.Tokens)
	if err != nil {
		return err
	}
	tokenIn, ok := reg.Lookup(cfg.TokenIn)
	if !ok {
		return fmt.Errorf("unknown token %q", cfg.TokenIn)
	}
	tokenOut, ok := reg.Lookup(cfg.TokenOut)
	if !ok {
		return fmt.Errorf("unknown token %q", cfg.TokenOut)
	}

	client, err := chain.NewClient(ctx, cfg.RPCURL, common.HexToAddress(cfg.SwapContract), common.Address{})
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer client.Close()

	resolver := swap.NewResolver(client, logger)

	var lookup swap.PairLookup
	err = chain.WithRetry(ctx, cfg.MaxRetries, cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		lookup, err = resolver.Resolve(ctx, tokenIn.SwapAddress, tokenOut.SwapAddress)
		if err != nil {
			logger.Warn("pair resolution failed", zap.Error(err))
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("resolve pair: %w", err)
	}

	implied := price.PoolImplied(lookup)
	fmt.Printf("%s-%s: %s\n", tokenIn.Symbol, tokenOut.Symbol, implied)
	return nil
}
