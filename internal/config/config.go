package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"swapScope/internal/swap"
)

// QuoteConfig holds configuration for the quote command, loaded from
// flags, env, or config file.
type QuoteConfig struct {
	RPCURL          string
	SwapContract    string
	OracleContract  string
	Tokens          []string
	TokenIn         string
	TokenOut        string
	Amount          float64
	SlippagePercent float64
	Exact           bool
	History         string
	PGDSN           string
	MaxRetries      int
	RetryBackoff    time.Duration
	LogLevel        string
}

// LoadQuote merges config file, environment variables, and flags into
// QuoteConfig.
func LoadQuote(cfgFile string, flags *pflag.FlagSet) (QuoteConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("slippage", swap.DefaultSlippagePercent)
		v.SetDefault("max-retries", 5)
		v.SetDefault("retry-backoff", 500*time.Millisecond)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return QuoteConfig{}, err
	}

	cfg := QuoteConfig{
		RPCURL:          v.GetString("rpc"),
		SwapContract:    v.GetString("swap-contract"),
		OracleContract:  v.GetString("oracle-contract"),
		Tokens:          getStringSlice(v, "token"),
		TokenIn:         v.GetString("in"),
		TokenOut:        v.GetString("out"),
		Amount:          v.GetFloat64("amount"),
		SlippagePercent: v.GetFloat64("slippage"),
		Exact:           v.GetBool("exact"),
		History:         v.GetString("history"),
		PGDSN:           v.GetString("pg-dsn"),
		MaxRetries:      v.GetInt("max-retries"),
		RetryBackoff:    v.GetDuration("retry-backoff"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, setDefaults func(*viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("QUOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if setDefaults != nil {
		setDefaults(v)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
