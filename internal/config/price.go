package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PriceConfig holds configuration for the price command.
type PriceConfig struct {
	RPCURL         string
	SwapContract   string
	OracleContract string
	Symbol         string
	Tokens         []string
	TokenIn        string
	TokenOut       string
	MaxRetries     int
	RetryBackoff   time.Duration
	LogLevel       string
}

// LoadPrice merges config file, environment variables, and flags into
// PriceConfig.
func LoadPrice(cfgFile string, flags *pflag.FlagSet) (PriceConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("max-retries", 5)
		v.SetDefault("retry-backoff", 500*time.Millisecond)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return PriceConfig{}, err
	}

	cfg := PriceConfig{
		RPCURL:         v.GetString("rpc"),
		SwapContract:   v.GetString("swap-contract"),
		OracleContract: v.GetString("oracle-contract"),
		Symbol:         v.GetString("symbol"),
		Tokens:         getStringSlice(v, "token"),
		TokenIn:        v.GetString("in"),
		TokenOut:       v.GetString("out"),
		MaxRetries:     v.GetInt("max-retries"),
		RetryBackoff:   v.GetDuration("retry-backoff"),
		LogLevel:       v.GetString("log-level"),
	}

	return cfg, nil
}
