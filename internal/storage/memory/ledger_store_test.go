package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
)

func TestLedgerStore_LatestBlockHeight(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	_, err := store.LatestBlockHeight(ctx)
	assert.ErrorIs(t, err, storage.ErrEmptyLedger)

	store.AddAccountEntry(AccountEntry{Address: "addr1", CreditValue: 100, BlockHeight: 10})
	store.AddAccountEntry(AccountEntry{Address: "addr2", CreditValue: 200, BlockHeight: 42})

	height, err := store.LatestBlockHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), height)
}

func TestLedgerStore_VestingReleasesSummedAndSorted(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	store.AddVestingEntry(VestingEntry{Address: "a", MicroSTX: 300, BlockHeight: 20})
	store.AddVestingEntry(VestingEntry{Address: "b", MicroSTX: 100, BlockHeight: 10})
	store.AddVestingEntry(VestingEntry{Address: "c", MicroSTX: 200, BlockHeight: 20})

	events, err := store.VestingReleases(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.VestingEvent{
		{BlockHeight: 10, MicroSTX: 100},
		{BlockHeight: 20, MicroSTX: 500},
	}, events)
}

func TestLedgerStore_UnlockedBalanceLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	// addr1 is credited at height 5, then spends part at height 8.
	store.AddAccountEntry(AccountEntry{Address: "addr1", CreditValue: 1000, BlockHeight: 5, VTxIndex: 0})
	store.AddAccountEntry(AccountEntry{Address: "addr1", CreditValue: 1000, DebitValue: 400, BlockHeight: 8, VTxIndex: 1})

	// addr2 stays locked until height 50.
	store.AddAccountEntry(AccountEntry{Address: "addr2", CreditValue: 5000, LockHeight: 50, BlockHeight: 5})

	balance, err := store.UnlockedBalanceAsOf(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), balance, "pre-spend entry is the latest at height 7")

	balance, err = store.UnlockedBalanceAsOf(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), balance, "spend entry replaces the earlier one")

	balance, err = store.UnlockedBalanceAsOf(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(5600), balance, "addr2 unlocks at height 50")
}

func TestLedgerStore_VestedBetween(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	store.AddVestingEntry(VestingEntry{Address: "a", MicroSTX: 100, BlockHeight: 10})
	store.AddVestingEntry(VestingEntry{Address: "a", MicroSTX: 200, BlockHeight: 20})
	store.AddVestingEntry(VestingEntry{Address: "a", MicroSTX: 400, BlockHeight: 30})

	vested, err := store.VestedBetween(ctx, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), vested, "floor is exclusive, height inclusive")

	vested, err = store.VestedBetween(ctx, 9, 0)
	require.NoError(t, err)
	assert.Zero(t, vested)
}

func TestLedgerStore_PlaceholderRows(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	store.AddAccountEntry(AccountEntry{Address: "zeta", CreditValue: 100, BlockHeight: 3})
	store.AddAccountEntry(AccountEntry{Address: "alpha", CreditValue: 900, BlockHeight: 1})
	store.AddAccountEntry(AccountEntry{Address: "alpha", CreditValue: 900, DebitValue: 100, BlockHeight: 2})

	rows, err := store.PlaceholderRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.PlaceholderAccount{
		{Address: "alpha", MicroSTX: 800, BlockHeight: 2},
		{Address: "zeta", MicroSTX: 100, BlockHeight: 3},
	}, rows)
}

func TestLedgerStore_QueryCounters(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()
	store.AddAccountEntry(AccountEntry{Address: "addr1", CreditValue: 1, BlockHeight: 1})

	_, err := store.UnlockedBalanceAsOf(ctx, 1)
	require.NoError(t, err)
	_, err = store.UnlockedBalanceAsOf(ctx, 2)
	require.NoError(t, err)
	_, err = store.VestedBetween(ctx, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, store.BalanceQueryCount())
	assert.Equal(t, 1, store.VestedQueryCount())
}
