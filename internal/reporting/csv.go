package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/units"
)

// Rows are terminated with CRLF to match the consumers of these artifacts.
const lineEnding = "\r\n"

// RenderSupplyCSV renders the supply series as CSV. Each monetary value is
// emitted both in micro-STX and as an exact decimal STX string.
func RenderSupplyCSV(series []domain.BlockTotal) string {
	var sb strings.Builder

	sb.WriteString("block_height,queried_micro_stx,queried_stx,vested_micro_stx,vested_stx,total_micro_stx,total_stx,estimated_time")
	sb.WriteString(lineEnding)

	for _, entry := range series {
		sb.WriteString(fmt.Sprintf("%d,%d,%s,%d,%s,%d,%s,%s",
			entry.BlockHeight,
			entry.QueriedMicro,
			units.FormatMicroStx(entry.QueriedMicro),
			entry.VestedMicro,
			units.FormatMicroStx(entry.VestedMicro),
			entry.TotalMicro,
			units.FormatMicroStx(entry.TotalMicro),
			entry.EstimatedTime.UTC().Format(time.RFC3339),
		))
		sb.WriteString(lineEnding)
	}

	return sb.String()
}

// RenderPlaceholderAccountsCSV renders one raw row per placeholder ledger
// entry.
func RenderPlaceholderAccountsCSV(accounts []domain.PlaceholderAccount) string {
	var sb strings.Builder

	sb.WriteString("address,block_height,micro_stx,stx")
	sb.WriteString(lineEnding)

	for _, a := range accounts {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%s",
			a.Address,
			a.BlockHeight,
			a.MicroSTX,
			units.FormatMicroStx(a.MicroSTX),
		))
		sb.WriteString(lineEnding)
	}

	return sb.String()
}

// RenderPlaceholderTotalsCSV aggregates placeholder entries by address and
// renders one row per address, sorted by address.
func RenderPlaceholderTotalsCSV(accounts []domain.PlaceholderAccount) string {
	totals := make(map[string]uint64)
	for _, a := range accounts {
		totals[a.Address] += a.MicroSTX
	}

	addresses := make([]string, 0, len(totals))
	for addr := range totals {
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)

	var sb strings.Builder

	sb.WriteString("address,micro_stx,stx")
	sb.WriteString(lineEnding)

	for _, addr := range addresses {
		sb.WriteString(fmt.Sprintf("%s,%d,%s",
			addr,
			totals[addr],
			units.FormatMicroStx(totals[addr]),
		))
		sb.WriteString(lineEnding)
	}

	return sb.String()
}
