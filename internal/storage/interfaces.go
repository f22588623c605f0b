package storage

import (
	"context"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
)

// LedgerStore provides read-only aggregate queries against the ledger
// snapshot. All queries are pure reads; the schedule never writes to the
// ledger.
type LedgerStore interface {
	// LatestBlockHeight returns the maximum known block height.
	LatestBlockHeight(ctx context.Context) (uint64, error)

	// VestingReleases returns the summed vesting amount per release height,
	// ascending by height.
	VestingReleases(ctx context.Context) ([]domain.VestingEvent, error)

	// LockTransferHeights returns the distinct block heights at which at
	// least one account's transfer lock matures, ascending.
	LockTransferHeights(ctx context.Context) ([]uint64, error)

	// UnlockedBalanceAsOf returns the net balance (credits minus debits) of
	// every account whose transfer lock has matured by height, using only the
	// most recent ledger entry per account at or before height.
	UnlockedBalanceAsOf(ctx context.Context, height uint64) (uint64, error)

	// VestedBetween returns the sum of vesting amounts released strictly
	// after floor and at or before height.
	VestedBetween(ctx context.Context, height, floor uint64) (uint64, error)

	// PlaceholderRows returns the latest ledger entry per address across the
	// whole ledger. Callers filter to non-canonical addresses.
	PlaceholderRows(ctx context.Context) ([]domain.PlaceholderAccount, error)
}

// SupplySeriesStore persists a computed supply series for downstream
// plotting.
type SupplySeriesStore interface {
	// InsertBulk adds all entries of one computed series.
	InsertBulk(ctx context.Context, series []domain.BlockTotal) error
}
