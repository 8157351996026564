package swap

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"swapScope/internal/chain"
)

type fakePairReader struct {
	responses map[[2]common.Address]chain.PairDetails
	err       error
	calls     [][2]common.Address
}

func (f *fakePairReader) PairDetails(_ context.Context, tokenX, tokenY common.Address) (chain.PairDetails, error) {
	key := [2]common.Address{tokenX, tokenY}
	f.calls = append(f.calls, key)
	if f.err != nil {
		return chain.PairDetails{}, f.err
	}
	details, ok := f.responses[key]
	if !ok {
		return chain.PairDetails{OK: false, ErrCode: chain.ErrCodePairNotFound}, nil
	}
	return details, nil
}

var (
	tokenA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tokenB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func pairDetails(reserveX, reserveY uint64) chain.PairDetails {
	return chain.PairDetails{
		OK:       true,
		ReserveX: new(big.Int).SetUint64(reserveX),
		ReserveY: new(big.Int).SetUint64(reserveY),
	}
}

func TestResolveDirectOrdering(t *testing.T) {
	reader := &fakePairReader{responses: map[[2]common.Address]chain.PairDetails{
		{tokenA, tokenB}: pairDetails(1_000_000_000, 2_000_000_000),
	}}

	lookup, err := NewResolver(reader, nil).Resolve(context.Background(), tokenA, tokenB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lookup.Found {
		t.Fatalf("pair should be found")
	}
	if lookup.Inverted {
		t.Fatalf("direct ordering should not be inverted")
	}
	if lookup.ReserveIn != 1_000_000_000 || lookup.ReserveOut != 2_000_000_000 {
		t.Fatalf("reserves mismatch: %+v", lookup)
	}
	if len(reader.calls) != 1 {
		t.Fatalf("expected one query, got %d", len(reader.calls))
	}
}

func TestResolveReversedOrdering(t *testing.T) {
	// Pool exists only as (B, A): the caller's input token is the pool's
	// second reserve.
	reader := &fakePairReader{responses: map[[2]common.Address]chain.PairDetails{
		{tokenB, tokenA}: pairDetails(5_000_000, 7_000_000),
	}}

	lookup, err := NewResolver(reader, nil).Resolve(context.Background(), tokenA, tokenB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lookup.Found || !lookup.Inverted {
		t.Fatalf("expected inverted lookup, got %+v", lookup)
	}
	if lookup.ReserveIn != 7_000_000 || lookup.ReserveOut != 5_000_000 {
		t.Fatalf("reserves not caller-oriented: %+v", lookup)
	}
	if len(reader.calls) != 2 {
		t.Fatalf("expected two queries, got %d", len(reader.calls))
	}
}

func TestResolveNotFoundInEitherOrdering(t *testing.T) {
	reader := &fakePairReader{}

	lookup, err := NewResolver(reader, nil).Resolve(context.Background(), tokenA, tokenB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookup.Found {
		t.Fatalf("pair should not be found")
	}
	if len(reader.calls) != 2 {
		t.Fatalf("expected two queries, got %d", len(reader.calls))
	}
}

func TestResolveOtherErrorCodeDoesNotRetry(t *testing.T) {
	reader := &fakePairReader{responses: map[[2]common.Address]chain.PairDetails{
		{tokenA, tokenB}: {OK: false, ErrCode: 500},
	}}

	lookup, err := NewResolver(reader, nil).Resolve(context.Background(), tokenA, tokenB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookup.Found {
		t.Fatalf("pair should not be found")
	}
	if len(reader.calls) != 1 {
		t.Fatalf("non-201 failure must not retry, got %d queries", len(reader.calls))
	}
}

func TestResolveTransportErrorPropagates(t *testing.T) {
	reader := &fakePairReader{err: errors.New("connection reset")}

	if _, err := NewResolver(reader, nil).Resolve(context.Background(), tokenA, tokenB); err == nil {
		t.Fatalf("expected transport error to propagate")
	}
}
