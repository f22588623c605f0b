// Package stacks validates destination addresses from the v1 ledger.
// Canonical addresses are base58check: a version byte, a 20-byte hash160
// payload, and a 4-byte double-SHA256 checksum. Ledger rows whose address
// fails this format are placeholder entries, not real holders.
package stacks

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// decoded length: 1 version byte + 20 payload bytes + 4 checksum bytes
const decodedAddressLen = 25

// IsCanonicalAddress reports whether addr is a well-formed base58check
// destination address with a valid checksum.
func IsCanonicalAddress(addr string) bool {
	if addr == "" {
		return false
	}

	decoded, err := base58.Decode(addr)
	if err != nil {
		return false
	}
	if len(decoded) != decodedAddressLen {
		return false
	}

	payload := decoded[:decodedAddressLen-4]
	checksum := decoded[decodedAddressLen-4:]

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	return bytes.Equal(checksum, second[:4])
}
