// Package units renders micro-STX amounts as decimal STX strings without
// floating-point arithmetic, so every digit of the ledger value survives.
package units

import "strconv"

// MicroPerSTX is the number of micro-STX base units per STX.
const MicroPerSTX = 1_000_000

// FormatMicroStx renders a micro-STX amount as a decimal STX string with six
// fractional digits. The integer string is zero-padded to at least seven
// digits and split six digits from the right; no float conversion occurs.
//
//	FormatMicroStx(1352464598000) == "1352464.598000"
//	FormatMicroStx(500)           == "0.000500"
func FormatMicroStx(micro uint64) string {
	s := strconv.FormatUint(micro, 10)
	for len(s) < 7 {
		s = "0" + s
	}
	split := len(s) - 6
	return s[:split] + "." + s[split:]
}
