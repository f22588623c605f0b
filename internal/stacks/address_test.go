package stacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanonicalAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"valid p2pkh", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", true},
		{"valid p2pkh short form", "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", true},
		{"empty", "", false},
		{"invalid base58 characters", "placeholder-account-1", false},
		{"zero and uppercase o rejected", "0OIl", false},
		{"too short", "abc", false},
		{"corrupted checksum", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonicalAddress(tt.addr))
		})
	}
}
