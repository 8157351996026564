package swap

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"swapScope/internal/chain"
)

// PairReader supplies pool reserves for a token ordering. Implemented by
// chain.Client; faked in tests.
type PairReader interface {
	PairDetails(ctx context.Context, tokenX, tokenY common.Address) (chain.PairDetails, error)
}

// PairLookup is the outcome of resolving a token pair. Reserves are base
// units, oriented to the caller: ReserveIn is the input-token side of the
// pool regardless of the on-chain ordering. Inverted records that the pool
// was created in the reversed ordering, which decides whether the swap is
// submitted as x-for-y or y-for-x.
type PairLookup struct {
	Found      bool
	Inverted   bool
	ReserveIn  uint64
	ReserveOut uint64
}

// Resolver finds which pool ordering holds the liquidity for a pair.
type Resolver struct {
	reader PairReader
	logger *zap.Logger
}

// NewResolver builds a Resolver. A nil logger disables logging.
func NewResolver(reader PairReader, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{reader: reader, logger: logger}
}

// Resolve queries the (tokenIn, tokenOut) ordering first. If the contract
// reports the pair-not-found code it retries the reversed ordering; any
// other in-band failure means no liquidity, without a retry. Transport
// failures propagate as errors.
func (r *Resolver) Resolve(ctx context.Context, tokenIn, tokenOut common.Address) (PairLookup, error) {
	details, err := r.reader.PairDetails(ctx, tokenIn, tokenOut)
	if err != nil {
		return PairLookup{}, err
	}

	if details.OK {
		lookup, err := newLookup(details, false)
		if err != nil {
			return PairLookup{}, err
		}
		r.logger.Debug("pair resolved",
			zap.Uint64("reserve_in", lookup.ReserveIn),
			zap.Uint64("reserve_out", lookup.ReserveOut),
		)
		return lookup, nil
	}

	if details.ErrCode != chain.ErrCodePairNotFound {
		r.logger.Debug("pair lookup failed", zap.Uint32("err_code", details.ErrCode))
		return PairLookup{}, nil
	}

	details, err = r.reader.PairDetails(ctx, tokenOut, tokenIn)
	if err != nil {
		return PairLookup{}, err
	}
	if !details.OK {
		r.logger.Debug("pair not found in either ordering")
		return PairLookup{}, nil
	}

	lookup, err := newLookup(details, true)
	if err != nil {
		return PairLookup{}, err
	}
	r.logger.Debug("pair resolved inverted",
		zap.Uint64("reserve_in", lookup.ReserveIn),
		zap.Uint64("reserve_out", lookup.ReserveOut),
	)
	return lookup, nil
}

// newLookup orients raw pool reserves to the caller. In the inverted case
// the caller's input token is the pool's second reserve.
func newLookup(details chain.PairDetails, inverted bool) (PairLookup, error) {
	if details.ReserveX == nil || details.ReserveY == nil ||
		!details.ReserveX.IsUint64() || !details.ReserveY.IsUint64() {
		return PairLookup{}, fmt.Errorf("pair reserves out of range: %v / %v", details.ReserveX, details.ReserveY)
	}

	lookup := PairLookup{
		Found:      true,
		Inverted:   inverted,
		ReserveIn:  details.ReserveX.Uint64(),
		ReserveOut: details.ReserveY.Uint64(),
	}
	if inverted {
		lookup.ReserveIn, lookup.ReserveOut = lookup.ReserveOut, lookup.ReserveIn
	}
	return lookup, nil
}
