package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
)

// AccountEntry is one row of the in-memory accounts ledger.
type AccountEntry struct {
	Address     string
	CreditValue uint64
	DebitValue  uint64
	LockHeight  uint64 // transfer-lock maturity height
	BlockHeight uint64
	VTxIndex    int
}

// VestingEntry is one row of the in-memory vesting schedule.
type VestingEntry struct {
	Address     string
	MicroSTX    uint64
	BlockHeight uint64
}

// LedgerStore is an in-memory implementation of storage.LedgerStore,
// mirroring the accounts and accounts_vesting tables. It is used by tests
// and by fixture mode, and counts balance/vesting queries so tests can
// assert the accumulator's carry-forward policy.
type LedgerStore struct {
	mu       sync.RWMutex
	accounts []AccountEntry
	vesting  []VestingEntry

	balanceQueries int
	vestedQueries  int
}

// NewLedgerStore creates a new empty in-memory ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Compile-time interface check.
var _ storage.LedgerStore = (*LedgerStore)(nil)

// AddAccountEntry appends one accounts row.
func (s *LedgerStore) AddAccountEntry(e AccountEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, e)
}

// AddVestingEntry appends one vesting schedule row.
func (s *LedgerStore) AddVestingEntry(e VestingEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vesting = append(s.vesting, e)
}

// BalanceQueryCount returns how many UnlockedBalanceAsOf calls were served.
func (s *LedgerStore) BalanceQueryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balanceQueries
}

// VestedQueryCount returns how many VestedBetween calls were served.
func (s *LedgerStore) VestedQueryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vestedQueries
}

// LatestBlockHeight returns the maximum block height in the accounts ledger.
func (s *LedgerStore) LatestBlockHeight(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.accounts) == 0 {
		return 0, storage.ErrEmptyLedger
	}

	var max uint64
	for _, e := range s.accounts {
		if e.BlockHeight > max {
			max = e.BlockHeight
		}
	}
	return max, nil
}

// VestingReleases returns summed vesting amounts per height, ascending.
func (s *LedgerStore) VestingReleases(_ context.Context) ([]domain.VestingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byHeight := make(map[uint64]uint64)
	for _, e := range s.vesting {
		byHeight[e.BlockHeight] += e.MicroSTX
	}

	heights := make([]uint64, 0, len(byHeight))
	for h := range byHeight {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })

	events := make([]domain.VestingEvent, 0, len(heights))
	for _, h := range heights {
		events = append(events, domain.VestingEvent{BlockHeight: h, MicroSTX: byHeight[h]})
	}
	return events, nil
}

// LockTransferHeights returns distinct lock-maturity heights, ascending.
func (s *LedgerStore) LockTransferHeights(_ context.Context) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[uint64]struct{})
	for _, e := range s.accounts {
		seen[e.LockHeight] = struct{}{}
	}

	heights := make([]uint64, 0, len(seen))
	for h := range seen {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights, nil
}

// UnlockedBalanceAsOf sums credit minus debit over the latest entry per
// address at or before height, restricted to matured locks.
func (s *LedgerStore) UnlockedBalanceAsOf(_ context.Context, height uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balanceQueries++

	latest := s.latestPerAddress(height)

	var total uint64
	for _, e := range latest {
		if e.LockHeight > height {
			continue
		}
		if e.DebitValue > e.CreditValue {
			return 0, storage.ErrNegativeBalance
		}
		total += e.CreditValue - e.DebitValue
	}
	return total, nil
}

// VestedBetween sums vesting amounts in (floor, height].
func (s *LedgerStore) VestedBetween(_ context.Context, height, floor uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vestedQueries++

	var total uint64
	for _, e := range s.vesting {
		if e.BlockHeight > floor && e.BlockHeight <= height {
			total += e.MicroSTX
		}
	}
	return total, nil
}

// PlaceholderRows returns the latest entry per address over the whole
// ledger, ordered by address.
func (s *LedgerStore) PlaceholderRows(_ context.Context) ([]domain.PlaceholderAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var maxHeight uint64
	for _, e := range s.accounts {
		if e.BlockHeight > maxHeight {
			maxHeight = e.BlockHeight
		}
	}
	latest := s.latestPerAddress(maxHeight)

	addresses := make([]string, 0, len(latest))
	for addr := range latest {
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)

	accounts := make([]domain.PlaceholderAccount, 0, len(addresses))
	for _, addr := range addresses {
		e := latest[addr]
		if e.DebitValue > e.CreditValue {
			return nil, storage.ErrNegativeBalance
		}
		accounts = append(accounts, domain.PlaceholderAccount{
			Address:     addr,
			MicroSTX:    e.CreditValue - e.DebitValue,
			BlockHeight: e.BlockHeight,
		})
	}
	return accounts, nil
}

// latestPerAddress picks the most recent entry per address at or before
// height, last-write-wins by (BlockHeight, VTxIndex). Caller holds the lock.
func (s *LedgerStore) latestPerAddress(height uint64) map[string]AccountEntry {
	latest := make(map[string]AccountEntry)
	for _, e := range s.accounts {
		if e.BlockHeight > height {
			continue
		}
		cur, ok := latest[e.Address]
		if !ok || e.BlockHeight > cur.BlockHeight ||
			(e.BlockHeight == cur.BlockHeight && e.VTxIndex > cur.VTxIndex) {
			latest[e.Address] = e
		}
	}
	return latest
}
