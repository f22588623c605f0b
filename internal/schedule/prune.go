package schedule

import "github.com/zone117x/stx-supply-schedule/internal/domain"

// Prune collapses the series to the heights where liquid supply actually
// moved: the first entry is always retained, and every later entry is
// retained only if its total differs from the previously retained entry's
// total. A new slice is returned; the input is not modified.
func Prune(series []domain.BlockTotal) []domain.BlockTotal {
	if len(series) == 0 {
		return nil
	}

	pruned := make([]domain.BlockTotal, 0, len(series))
	pruned = append(pruned, series[0])
	for _, entry := range series[1:] {
		if entry.TotalMicro != pruned[len(pruned)-1].TotalMicro {
			pruned = append(pruned, entry)
		}
	}
	return pruned
}
