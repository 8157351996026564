package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// VaultConfig holds configuration for the vault command.
type VaultConfig struct {
	RPCURL          string
	SwapContract    string
	OracleContract  string
	Symbol          string
	Price           float64
	Collateral      float64
	Debt            float64
	MinRatioPercent float64
	PGDSN           string
	MaxRetries      int
	RetryBackoff    time.Duration
	LogLevel        string
}

// LoadVault merges config file, environment variables, and flags into
// VaultConfig.
func LoadVault(cfgFile string, flags *pflag.FlagSet) (VaultConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("min-ratio", 111.0)
		v.SetDefault("max-retries", 5)
		v.SetDefault("retry-backoff", 500*time.Millisecond)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return VaultConfig{}, err
	}

	cfg := VaultConfig{
		RPCURL:          v.GetString("rpc"),
		SwapContract:    v.GetString("swap-contract"),
		OracleContract:  v.GetString("oracle-contract"),
		Symbol:          v.GetString("symbol"),
		Price:           v.GetFloat64("price"),
		Collateral:      v.GetFloat64("collateral"),
		Debt:            v.GetFloat64("debt"),
		MinRatioPercent: v.GetFloat64("min-ratio"),
		PGDSN:           v.GetString("pg-dsn"),
		MaxRetries:      v.GetInt("max-retries"),
		RetryBackoff:    v.GetDuration("retry-backoff"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}
