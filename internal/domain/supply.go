package domain

import "time"

// BlockTotal is one point of the reconstructed unlocked-supply series.
// One entry is produced per iterated block height; heights are strictly
// increasing and Total never decreases across the sequence.
type BlockTotal struct {
	BlockHeight   uint64    // ledger block height
	QueriedMicro  uint64    // net unlocked account balances, micro-STX
	VestedMicro   uint64    // cumulative vesting released since the start height, micro-STX
	TotalMicro    uint64    // QueriedMicro + VestedMicro
	EstimatedTime time.Time // illustrative wall-clock estimate for the height
}

// VestingEvent is the summed vesting release at one block height.
// Sourced once from the ledger, ascending by height.
type VestingEvent struct {
	BlockHeight uint64
	MicroSTX    uint64
}

// PlaceholderAccount is the latest ledger state of one address. Addresses
// that fail destination-format validation are reported separately as
// placeholder entries; their value still counts toward the headline total.
type PlaceholderAccount struct {
	Address     string // raw ledger address, possibly non-canonical
	MicroSTX    uint64 // net credit minus debit of the latest entry
	BlockHeight uint64 // height of the latest entry
}
