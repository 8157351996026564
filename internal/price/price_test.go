package price

import (
	"testing"

	"swapScope/internal/swap"
)

func TestCentsToReadable(t *testing.T) {
	if got := CentsToReadable(250).String(); got != "2.5" {
		t.Fatalf("250 cents should read 2.5, got %s", got)
	}
	if got := CentsToReadable(99).String(); got != "0.99" {
		t.Fatalf("99 cents should read 0.99, got %s", got)
	}
	if got := CentsToReadable(0).String(); got != "0" {
		t.Fatalf("0 cents should read 0, got %s", got)
	}
}

func TestPoolImpliedRoundsToTwoDecimals(t *testing.T) {
	lookup := swap.PairLookup{
		Found:      true,
		ReserveIn:  3_000_000,
		ReserveOut: 1_000_000,
	}
	if got := PoolImplied(lookup).String(); got != "0.33" {
		t.Fatalf("implied price should round to 0.33, got %s", got)
	}

	lookup = swap.PairLookup{
		Found:      true,
		ReserveIn:  1_000_000_000,
		ReserveOut: 2_000_000_000,
	}
	if got := PoolImplied(lookup).String(); got != "2" {
		t.Fatalf("implied price should be 2, got %s", got)
	}
}

func TestPoolImpliedMissingPair(t *testing.T) {
	if !PoolImplied(swap.PairLookup{}).IsZero() {
		t.Fatalf("missing pair should imply a zero price")
	}
	if !PoolImplied(swap.PairLookup{Found: true, ReserveIn: 0, ReserveOut: 5}).IsZero() {
		t.Fatalf("empty reserve should imply a zero price")
	}
}
