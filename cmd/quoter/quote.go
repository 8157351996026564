package main

import (
	"context"
	"fmt"
	"math/big"
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
	"swapScope/internal/registry"
	"swapScope/internal/storage"
	"swapScope/internal/storage/postgres"
	"swapScope/internal/swap"
)

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuote(cfgFile, cmd.Flags())
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
	if !common.IsHexAddress(cfg.SwapContract) {
		return fmt.Errorf("swap contract address is required")
	}
	if cfg.TokenIn == "" || cfg.TokenOut == "" {
		return fmt.Errorf("both in and out token symbols are required")
	}
	if cfg.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if cfg.SlippagePercent <= 0 || cfg.SlippagePercent >= 100 {
		return fmt.Errorf("slippage must be between 0 and 100 percent")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := chain.NewClient(ctx, cfg.RPCURL, common.HexToAddress(cfg.SwapContract), common.Address{})
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer client.Close()

	logger.Info("quote start",
		zap.String("token_in", tokenIn.Symbol),
		zap.String("token_out", tokenOut.Symbol),
		zap.Float64("amount", cfg.Amount),
		zap.Float64("slippage_percent", cfg.SlippagePercent),
	)

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

	if !lookup.Found {
		fmt.Printf("No liquidity for %s-%s. Try another pair.\n", tokenIn.Symbol, tokenOut.Symbol)
		return nil
	}

	quote := swap.Quote(swap.QuoteInput{
		ReserveIn:       lookup.ReserveIn,
		ReserveOut:      lookup.ReserveOut,
		AmountIn:        cfg.Amount,
		SlippagePercent: cfg.SlippagePercent,
		Inverted:        lookup.Inverted,
	})

	printQuote(tokenIn.Symbol, tokenOut.Symbol, quote)

	if cfg.Exact {
		exact := swap.ExactAmountOut(
			new(big.Int).SetUint64(model.ReadableToMicro(cfg.Amount)),
			new(big.Int).SetUint64(lookup.ReserveIn),
			new(big.Int).SetUint64(lookup.ReserveOut),
		)
		fmt.Printf("Curve-exact output:  %s %s\n",
			model.FormatAmount(model.MicroToReadable(exact.Uint64())), tokenOut.Symbol)
	}

	record := model.QuoteRecord{
		QuotedAt:        time.Now().UTC(),
		TokenIn:         tokenIn.Symbol,
		TokenOut:        tokenOut.Symbol,
		SlippagePercent: cfg.SlippagePercent,
		SwapQuote:       quote,
	}

	if cfg.History != "" {
		var sink storage.QuoteSink = storage.NewJsonlHistory(cfg.History)
		if err := sink.AppendQuotes([]model.QuoteRecord{record}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.InsertQuotes(ctx, []model.QuoteRecord{record}); err != nil {
			return fmt.Errorf("store quote: %w", err)
		}
		logger.Info("quote stored", zap.String("pg_dsn", redactDSN(cfg.PGDSN)))
	}

	return nil
}

func printQuote(tokenIn, tokenOut string, quote model.SwapQuote) {
	if quote.AmountOut == 0 {
		fmt.Println("Please enter an amount")
		return
	}
	fmt.Printf("Output amount:       %s %s\n", model.FormatAmount(quote.AmountOut), tokenOut)
	fmt.Printf("Minimum received:    %s %s\n", model.FormatAmount(quote.MinimumReceived), tokenOut)
	fmt.Printf("Price impact:        %s%%\n", model.FormatAmount(quote.PriceImpactPercent))
	fmt.Printf("LP fee:              %s %s\n", model.FormatAmount(quote.LPFee), tokenIn)
	fmt.Printf("Spot price:          %s %s per %s\n", model.FormatAmount(quote.SpotPrice), tokenOut, tokenIn)
}
