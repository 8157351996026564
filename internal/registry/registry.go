package registry

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"swapScope/internal/model"
)

// TokenDecimals is the fixed decimal scale for all registered tokens.
const TokenDecimals = 6

// Registry maps token symbols to their contract identifiers. Lookups are
// case-insensitive. The registry is static data: it is built once from
// config and never mutated afterwards.
type Registry struct {
	tokens map[string]model.Token
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tokens: make(map[string]model.Token)}
}

// Add registers a token under its lower-cased symbol.
func (r *Registry) Add(token model.Token) {
	r.tokens[strings.ToLower(token.Symbol)] = token
}

// Lookup returns the token for a symbol, case-insensitively.
func (r *Registry) Lookup(symbol string) (model.Token, bool) {
	token, ok := r.tokens[strings.ToLower(symbol)]
	return token, ok
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	return len(r.tokens)
}

// Parse builds a registry from "SYMBOL=0xcanonical" or
// "SYMBOL=0xcanonical:0xswap" entries. When no swap address is given the
// canonical contract trades directly against the pools.
func Parse(entries []string) (*Registry, error) {
	reg := New()
	for _, entry := range entries {
		token, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		reg.Add(token)
	}
	return reg, nil
}

func parseEntry(entry string) (model.Token, error) {
	symbol, addrs, ok := strings.Cut(strings.TrimSpace(entry), "=")
	if !ok || symbol == "" {
		return model.Token{}, fmt.Errorf("invalid token entry %q", entry)
	}

	canonical, swap, hasSwap := strings.Cut(addrs, ":")
	if !common.IsHexAddress(canonical) {
		return model.Token{}, fmt.Errorf("token %s: invalid address %q", symbol, canonical)
	}
	token := model.Token{
		Symbol:   symbol,
		Address:  common.HexToAddress(canonical),
		Decimals: TokenDecimals,
	}

	token.SwapAddress = token.Address
	if hasSwap {
		if !common.IsHexAddress(swap) {
			return model.Token{}, fmt.Errorf("token %s: invalid swap address %q", symbol, swap)
		}
		token.SwapAddress = common.HexToAddress(swap)
	}

	return token, nil
}
