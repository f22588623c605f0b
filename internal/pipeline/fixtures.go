package pipeline

import (
	"github.com/zone117x/stx-supply-schedule/internal/storage/memory"
)

// LoadFixtureLedger fills store with a small demo ledger: two transfer-locked
// accounts, a vesting schedule, and one placeholder entry. Used by fixture
// mode so the binary can run without a database.
func LoadFixtureLedger(store *memory.LedgerStore) {
	// Unlocked from the snapshot height.
	store.AddAccountEntry(memory.AccountEntry{
		Address:     "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		CreditValue: 1_352_464_598_000,
		LockHeight:  0,
		BlockHeight: 100,
	})

	// Locked until height 120.
	store.AddAccountEntry(memory.AccountEntry{
		Address:     "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM",
		CreditValue: 250_000_000_000,
		LockHeight:  120,
		BlockHeight: 100,
	})

	// Bookkeeping entry with a non-canonical address.
	store.AddAccountEntry(memory.AccountEntry{
		Address:     "placeholder_genesis_pool",
		CreditValue: 42_000_000_000,
		LockHeight:  0,
		BlockHeight: 100,
	})

	// Stepwise vesting past the snapshot height.
	store.AddVestingEntry(memory.VestingEntry{Address: "grant-1", MicroSTX: 10_000_000_000, BlockHeight: 110})
	store.AddVestingEntry(memory.VestingEntry{Address: "grant-1", MicroSTX: 10_000_000_000, BlockHeight: 130})
	store.AddVestingEntry(memory.VestingEntry{Address: "grant-2", MicroSTX: 5_000_000_000, BlockHeight: 130})
}
