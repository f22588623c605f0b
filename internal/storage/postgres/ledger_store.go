package postgres

import (
	"context"
	"fmt"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
)

// LedgerStore implements storage.LedgerStore against the v1 ledger snapshot
// tables (accounts, accounts_vesting) in PostgreSQL.
type LedgerStore struct {
	pool *Pool
}

// NewLedgerStore creates a new LedgerStore.
func NewLedgerStore(pool *Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

// Compile-time interface check.
var _ storage.LedgerStore = (*LedgerStore)(nil)

// LatestBlockHeight returns the maximum block height in the accounts ledger.
func (s *LedgerStore) LatestBlockHeight(ctx context.Context) (uint64, error) {
	query := `SELECT MAX(block_id) FROM accounts`

	var height *int64
	if err := s.pool.QueryRow(ctx, query).Scan(&height); err != nil {
		return 0, fmt.Errorf("query latest block height: %w", err)
	}
	if height == nil {
		return 0, storage.ErrEmptyLedger
	}
	return uint64(*height), nil
}

// VestingReleases returns the summed vesting amount per release height,
// ascending by height.
func (s *LedgerStore) VestingReleases(ctx context.Context) ([]domain.VestingEvent, error) {
	query := `
		SELECT block_id, SUM(vesting_value)::BIGINT
		FROM accounts_vesting
		GROUP BY block_id
		ORDER BY block_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vesting releases: %w", err)
	}
	defer rows.Close()

	var events []domain.VestingEvent
	for rows.Next() {
		var height, amount int64
		if err := rows.Scan(&height, &amount); err != nil {
			return nil, fmt.Errorf("scan vesting release row: %w", err)
		}
		events = append(events, domain.VestingEvent{
			BlockHeight: uint64(height),
			MicroSTX:    uint64(amount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vesting release rows: %w", err)
	}

	return events, nil
}

// LockTransferHeights returns the distinct lock-maturity heights, ascending.
func (s *LedgerStore) LockTransferHeights(ctx context.Context) ([]uint64, error) {
	query := `
		SELECT DISTINCT lock_transfer_block_id
		FROM accounts
		ORDER BY lock_transfer_block_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query lock transfer heights: %w", err)
	}
	defer rows.Close()

	var heights []uint64
	for rows.Next() {
		var height int64
		if err := rows.Scan(&height); err != nil {
			return nil, fmt.Errorf("scan lock transfer height row: %w", err)
		}
		heights = append(heights, uint64(height))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lock transfer height rows: %w", err)
	}

	return heights, nil
}

// UnlockedBalanceAsOf returns the net unlocked balance at height. Per
// account, only the most recent ledger entry at or before height counts
// (last-write-wins by block then vtxindex); the account contributes only if
// that entry's transfer lock has matured. Placeholder addresses are included
// in this aggregate; they are broken out separately by PlaceholderRows.
func (s *LedgerStore) UnlockedBalanceAsOf(ctx context.Context, height uint64) (uint64, error) {
	query := `
		SELECT COALESCE(SUM(credit_value - debit_value), 0)::BIGINT
		FROM (
			SELECT DISTINCT ON (address) credit_value, debit_value, lock_transfer_block_id
			FROM accounts
			WHERE block_id <= $1
			ORDER BY address, block_id DESC, vtxindex DESC
		) latest
		WHERE lock_transfer_block_id <= $1
	`

	var balance int64
	if err := s.pool.QueryRow(ctx, query, int64(height)).Scan(&balance); err != nil {
		return 0, fmt.Errorf("query unlocked balance at height %d: %w", height, err)
	}
	if balance < 0 {
		return 0, fmt.Errorf("unlocked balance at height %d: %w", height, storage.ErrNegativeBalance)
	}
	return uint64(balance), nil
}

// VestedBetween returns the vesting sum released in (floor, height].
func (s *LedgerStore) VestedBetween(ctx context.Context, height, floor uint64) (uint64, error) {
	query := `
		SELECT COALESCE(SUM(vesting_value), 0)::BIGINT
		FROM accounts_vesting
		WHERE block_id > $1 AND block_id <= $2
	`

	var vested int64
	if err := s.pool.QueryRow(ctx, query, int64(floor), int64(height)).Scan(&vested); err != nil {
		return 0, fmt.Errorf("query vested between %d and %d: %w", floor, height, err)
	}
	return uint64(vested), nil
}

// PlaceholderRows returns the latest ledger entry per address across the
// whole ledger, ordered by address. Address-format filtering happens in the
// caller; the query itself is format-agnostic.
func (s *LedgerStore) PlaceholderRows(ctx context.Context) ([]domain.PlaceholderAccount, error) {
	query := `
		SELECT DISTINCT ON (address) address, credit_value - debit_value, block_id
		FROM accounts
		ORDER BY address, block_id DESC, vtxindex DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query placeholder rows: %w", err)
	}
	defer rows.Close()

	var accounts []domain.PlaceholderAccount
	for rows.Next() {
		var (
			address string
			amount  int64
			height  int64
		)
		if err := rows.Scan(&address, &amount, &height); err != nil {
			return nil, fmt.Errorf("scan placeholder row: %w", err)
		}
		if amount < 0 {
			return nil, fmt.Errorf("placeholder account %s: %w", address, storage.ErrNegativeBalance)
		}
		accounts = append(accounts, domain.PlaceholderAccount{
			Address:     address,
			MicroSTX:    uint64(amount),
			BlockHeight: uint64(height),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate placeholder rows: %w", err)
	}

	return accounts, nil
}
