// Package schedule reconstructs the unlocked-supply series by walking block
// heights sequentially from the ledger's current height to a horizon just
// past the last known unlock event.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
)

const (
	// DefaultHorizonBuffer is how many blocks past the last unlock event the
	// series extends, so it visibly flattens after the final unlock. Tunable;
	// nothing downstream depends on the exact value.
	DefaultHorizonBuffer = 5

	// DefaultBlockInterval is the average block interval used for the
	// illustrative estimated timestamps.
	DefaultBlockInterval = 10 * time.Minute
)

// Accumulator walks block heights and produces one BlockTotal per height.
// Balances only change at heights where an unlock event is known a priori to
// occur, so the accumulator re-queries the ledger only at those heights and
// carries the previous values forward everywhere else.
type Accumulator struct {
	ledger        storage.LedgerStore
	horizonBuffer uint64
	blockInterval time.Duration
	clock         func() time.Time
}

// NewAccumulator creates an accumulator over the given ledger.
func NewAccumulator(ledger storage.LedgerStore) *Accumulator {
	return &Accumulator{
		ledger:        ledger,
		horizonBuffer: DefaultHorizonBuffer,
		blockInterval: DefaultBlockInterval,
		clock:         func() time.Time { return time.Now().UTC() },
	}
}

// WithHorizonBuffer overrides the horizon buffer.
func (a *Accumulator) WithHorizonBuffer(blocks uint64) *Accumulator {
	a.horizonBuffer = blocks
	return a
}

// WithBlockInterval overrides the assumed average block interval.
func (a *Accumulator) WithBlockInterval(d time.Duration) *Accumulator {
	a.blockInterval = d
	return a
}

// WithClock sets a custom clock function for deterministic output.
func (a *Accumulator) WithClock(clock func() time.Time) *Accumulator {
	a.clock = clock
	return a
}

// Run produces the full pre-pruning series, starting at the ledger's latest
// block height and ending at max(last lock height, last vesting height) plus
// the horizon buffer. Heights increase by exactly 1 per entry.
//
// Vesting releases at or before the start height are treated as already
// reflected in the queried balance snapshot; only releases strictly after
// the start height accrue into the vested column.
func (a *Accumulator) Run(ctx context.Context) ([]domain.BlockTotal, error) {
	start, err := a.ledger.LatestBlockHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest block height: %w", err)
	}

	releases, err := a.ledger.VestingReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("vesting releases: %w", err)
	}
	vestingAt := make(map[uint64]struct{}, len(releases))
	var lastVesting uint64
	for _, r := range releases {
		vestingAt[r.BlockHeight] = struct{}{}
		if r.BlockHeight > lastVesting {
			lastVesting = r.BlockHeight
		}
	}

	lockHeights, err := a.ledger.LockTransferHeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock transfer heights: %w", err)
	}
	lockAt := make(map[uint64]struct{}, len(lockHeights))
	var lastLock uint64
	for _, h := range lockHeights {
		lockAt[h] = struct{}{}
		if h > lastLock {
			lastLock = h
		}
	}

	horizon := lastLock
	if lastVesting > horizon {
		horizon = lastVesting
	}
	horizon += a.horizonBuffer
	if horizon < start {
		// All unlock events are in the past; the series is a flat line from
		// the current height.
		horizon = start
	}

	now := a.clock()
	floor := start
	var queried, vested uint64

	series := make([]domain.BlockTotal, 0, horizon-start+1)
	for height := start; height <= horizon; height++ {
		if _, isRelease := vestingAt[height]; isRelease && height > floor {
			released, err := a.ledger.VestedBetween(ctx, height, floor)
			if err != nil {
				return nil, fmt.Errorf("vested at height %d: %w", height, err)
			}
			vested += released
			floor = height
		}

		if _, isUnlock := lockAt[height]; isUnlock || height == start {
			queried, err = a.ledger.UnlockedBalanceAsOf(ctx, height)
			if err != nil {
				return nil, fmt.Errorf("unlocked balance at height %d: %w", height, err)
			}
		}

		series = append(series, domain.BlockTotal{
			BlockHeight:   height,
			QueriedMicro:  queried,
			VestedMicro:   vested,
			TotalMicro:    queried + vested,
			EstimatedTime: now.Add(time.Duration(height-start) * a.blockInterval),
		})
	}

	return series, nil
}
