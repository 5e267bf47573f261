package domain

import "time"

const bytesPerMB = 1024 * 1024

// BytesToMB converts a byte count to megabytes (MiB).
func BytesToMB(b int64) float64 {
	return float64(b) / bytesPerMB
}

// ProcessUsageStats is the per-process result of reconciliation.
type ProcessUsageStats struct {
	Info                ProcessInfo `json:"process" yaml:"process"`
	ExecutionCount      int         `json:"execution_count" yaml:"execution_count"`
	TotalSizeBytes      int64       `json:"total_size_bytes" yaml:"total_size_bytes"`
	MaxSizeBytes        int64       `json:"max_size_bytes" yaml:"max_size_bytes"`
	DefinitionSizeBytes int64       `json:"definition_size_bytes" yaml:"definition_size_bytes"`
	ExecutionSizeBytes  int64       `json:"execution_size_bytes" yaml:"execution_size_bytes"`
	FirstRun            time.Time   `json:"first_run,omitzero" yaml:"first_run,omitempty"`
	LastRun             time.Time   `json:"last_run,omitzero" yaml:"last_run,omitempty"`
}

func (s ProcessUsageStats) TotalSizeMB() float64 {
	return BytesToMB(s.TotalSizeBytes)
}

// AvgSizeMB returns the total size spread over all executions, or 0 when
// there were none.
func (s ProcessUsageStats) AvgSizeMB() float64 {
	if s.ExecutionCount == 0 {
		return 0
	}
	return s.TotalSizeMB() / float64(s.ExecutionCount)
}

func (s ProcessUsageStats) MaxSizeMB() float64 {
	return BytesToMB(s.MaxSizeBytes)
}

func (s ProcessUsageStats) DefinitionSizeMB() float64 {
	return BytesToMB(s.DefinitionSizeBytes)
}

func (s ProcessUsageStats) ExecutionSizeMB() float64 {
	return BytesToMB(s.ExecutionSizeBytes)
}
