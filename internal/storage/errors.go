package storage

import "errors"

// Storage errors shared by all implementations.
var (
	// ErrEmptyLedger is returned when an aggregate query finds no ledger
	// rows at all, e.g. LatestBlockHeight against an empty snapshot.
	ErrEmptyLedger = errors.New("ledger snapshot contains no entries")

	// ErrNegativeBalance is returned when a net balance aggregate comes back
	// below zero, which indicates a malformed ledger snapshot.
	ErrNegativeBalance = errors.New("negative net balance in ledger aggregate")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
