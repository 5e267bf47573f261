package reconcile

import (
	"time"

	"github.com/anomredux/boomi-du/internal/domain"
)

// aggregate is the mutable running state of one bucket during a merge.
type aggregate struct {
	info            domain.ProcessInfo
	count           int
	executionBytes  int64
	definitionBytes int64
	maxExecution    int64
	firstRun        time.Time
	lastRun         time.Time
}

func (a *aggregate) add(e domain.ExecutionRecord) {
	a.count++
	a.executionBytes += e.SizeBytes
	a.maxExecution = max(a.maxExecution, e.SizeBytes)

	if e.Timestamp == nil {
		return
	}
	ts := *e.Timestamp
	if a.firstRun.IsZero() || ts.Before(a.firstRun) {
		a.firstRun = ts
	}
	if ts.After(a.lastRun) {
		a.lastRun = ts
	}
}

func (a *aggregate) finalize() domain.ProcessUsageStats {
	return domain.ProcessUsageStats{
		Info:                a.info,
		ExecutionCount:      a.count,
		TotalSizeBytes:      a.executionBytes + a.definitionBytes,
		MaxSizeBytes:        max(a.maxExecution, a.definitionBytes),
		DefinitionSizeBytes: a.definitionBytes,
		ExecutionSizeBytes:  a.executionBytes,
		FirstRun:            a.firstRun,
		LastRun:             a.lastRun,
	}
}
