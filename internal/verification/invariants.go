// Package verification checks the invariants of a computed supply series.
// Violations are returned as structured values; the orchestration layer
// decides how to terminate.
package verification

import (
	"fmt"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
)

// Check names for the individual invariants.
const (
	CheckNonEmpty      = "non_empty"
	CheckStartHeight   = "start_height"
	CheckHeightStep    = "height_step"
	CheckMonotonic     = "monotonic_total"
	CheckTotalIdentity = "total_identity"
)

// ViolationError describes the first invariant the series failed.
type ViolationError struct {
	Check  string // which invariant failed
	Index  int    // offending series index
	Detail string // human-readable description
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("series invariant %s violated at index %d: %s", e.Check, e.Index, e.Detail)
}

// CheckSeries verifies the full pre-pruning series: it is non-empty, starts
// at startHeight, heights increase by exactly 1, totals never decrease, and
// every total equals queried plus vested. Returns nil on success.
func CheckSeries(series []domain.BlockTotal, startHeight uint64) error {
	if len(series) == 0 {
		return &ViolationError{
			Check:  CheckNonEmpty,
			Index:  0,
			Detail: "series is empty",
		}
	}

	if series[0].BlockHeight != startHeight {
		return &ViolationError{
			Check:  CheckStartHeight,
			Index:  0,
			Detail: fmt.Sprintf("first height %d, expected start height %d", series[0].BlockHeight, startHeight),
		}
	}

	for i, entry := range series {
		if entry.TotalMicro != entry.QueriedMicro+entry.VestedMicro {
			return &ViolationError{
				Check:  CheckTotalIdentity,
				Index:  i,
				Detail: fmt.Sprintf("total %d != queried %d + vested %d", entry.TotalMicro, entry.QueriedMicro, entry.VestedMicro),
			}
		}
		if i == 0 {
			continue
		}
		prev := series[i-1]
		if entry.BlockHeight != prev.BlockHeight+1 {
			return &ViolationError{
				Check:  CheckHeightStep,
				Index:  i,
				Detail: fmt.Sprintf("height %d follows %d, expected %d", entry.BlockHeight, prev.BlockHeight, prev.BlockHeight+1),
			}
		}
		if entry.TotalMicro < prev.TotalMicro {
			return &ViolationError{
				Check:  CheckMonotonic,
				Index:  i,
				Detail: fmt.Sprintf("total %d decreased from %d at height %d", entry.TotalMicro, prev.TotalMicro, entry.BlockHeight),
			}
		}
	}

	return nil
}

// CheckPruned verifies a post-pruning series: totals still never decrease
// and no two adjacent entries share a total.
func CheckPruned(pruned []domain.BlockTotal) error {
	for i := 1; i < len(pruned); i++ {
		prev := pruned[i-1]
		if pruned[i].TotalMicro < prev.TotalMicro {
			return &ViolationError{
				Check:  CheckMonotonic,
				Index:  i,
				Detail: fmt.Sprintf("pruned total %d decreased from %d", pruned[i].TotalMicro, prev.TotalMicro),
			}
		}
		if pruned[i].TotalMicro == prev.TotalMicro {
			return &ViolationError{
				Check:  CheckMonotonic,
				Index:  i,
				Detail: fmt.Sprintf("pruned series retains duplicate total %d", pruned[i].TotalMicro),
			}
		}
	}
	return nil
}
