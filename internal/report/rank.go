package report

import (
	"cmp"
	"slices"

	"github.com/anomredux/boomi-du/internal/domain"
)

// ByTotalSize returns a copy of stats ordered by combined size, largest first.
// Ties fall back to name and then identifier.
func ByTotalSize(stats []domain.ProcessUsageStats) []domain.ProcessUsageStats {
	return rank(stats, func(a, b domain.ProcessUsageStats) int {
		return cmp.Compare(b.TotalSizeBytes, a.TotalSizeBytes)
	})
}

// ByAverageSize returns a copy of stats ordered by average size per
// execution, largest first.
func ByAverageSize(stats []domain.ProcessUsageStats) []domain.ProcessUsageStats {
	return rank(stats, func(a, b domain.ProcessUsageStats) int {
		return cmp.Compare(b.AvgSizeMB(), a.AvgSizeMB())
	})
}

func rank(stats []domain.ProcessUsageStats, metric func(a, b domain.ProcessUsageStats) int) []domain.ProcessUsageStats {
	out := slices.Clone(stats)
	slices.SortStableFunc(out, func(a, b domain.ProcessUsageStats) int {
		if c := metric(a, b); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Info.Name, b.Info.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Info.ID, b.Info.ID)
	})
	return out
}
