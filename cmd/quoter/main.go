package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "quoter",
		Short:        "Swap quoting and vault risk CLI",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a token swap against the pool reserves",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("rpc", "", "chain RPC URL")
	quoteCmd.Flags().String("swap-contract", "", "swap contract address")
	quoteCmd.Flags().StringSlice("token", nil, "token registry entries SYMBOL=0xaddr[:0xswap] (comma-separated)")
	quoteCmd.Flags().String("in", "", "input token symbol")
	quoteCmd.Flags().String("out", "", "output token symbol")
	quoteCmd.Flags().Float64("amount", 0, "input amount (readable units)")
	quoteCmd.Flags().Float64("slippage", 0.4, "slippage tolerance percent")
	quoteCmd.Flags().Bool("exact", false, "also print the curve-exact output amount")
	quoteCmd.Flags().String("history", "", "optional JSONL quote history path")
	quoteCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for quote history")
	quoteCmd.Flags().Int("max-retries", 5, "maximum transport retry attempts")
	quoteCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial transport retry backoff")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	vaultCmd := &cobra.Command{
		Use:   "vault",
		Short: "Compute vault risk metrics",
		RunE:  runVault,
	}

	vaultCmd.Flags().String("rpc", "", "chain RPC URL (for oracle price)")
	vaultCmd.Flags().String("oracle-contract", "", "oracle contract address")
	vaultCmd.Flags().String("symbol", "", "collateral symbol for the oracle price")
	vaultCmd.Flags().Float64("price", 0, "collateral price override (readable units)")
	vaultCmd.Flags().Float64("collateral", 0, "collateral amount (readable units)")
	vaultCmd.Flags().Float64("debt", 0, "minted debt (readable units)")
	vaultCmd.Flags().Float64("min-ratio", 111, "minimum collateralization percent")
	vaultCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for vault snapshots")
	vaultCmd.Flags().Int("max-retries", 5, "maximum transport retry attempts")
	vaultCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial transport retry backoff")
	vaultCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(vaultCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Fetch an oracle or pool-implied price",
		RunE:  runPrice,
	}

	priceCmd.Flags().String("rpc", "", "chain RPC URL")
	priceCmd.Flags().String("swap-contract", "", "swap contract address (pool-implied price)")
	priceCmd.Flags().String("oracle-contract", "", "oracle contract address")
	priceCmd.Flags().String("symbol", "", "symbol for the oracle price")
	priceCmd.Flags().StringSlice("token", nil, "token registry entries SYMBOL=0xaddr[:0xswap] (comma-separated)")
	priceCmd.Flags().String("in", "", "base token symbol (pool-implied price)")
	priceCmd.Flags().String("out", "", "quote token symbol (pool-implied price)")
	priceCmd.Flags().Int("max-retries", 5, "maximum transport retry attempts")
	priceCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial transport retry backoff")
	priceCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(priceCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
