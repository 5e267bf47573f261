package domain

import "time"

// Type tag and name used for records that have no matching definition.
const (
	UnknownType       = "unknown"
	NoExecutionsFound = "NO_EXECUTIONS_FOUND"
)

// ProcessInfo is a parsed process definition descriptor.
type ProcessInfo struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Folder string `json:"folder,omitempty" yaml:"folder,omitempty"`
}

// Placeholder builds the info attached to a bucket without a known definition.
func Placeholder(id, name string) ProcessInfo {
	return ProcessInfo{ID: id, Name: name, Type: UnknownType}
}

type ExecutionRecord struct {
	ID          string // run directory name
	ProcessName string // from the "Executing Process" log message
	SizeBytes   int64
	Timestamp   *time.Time // nil when the log carried no parsable time
}

// LogUsage is the aggregate footprint of the shared container logs. These
// files are not attributed to individual processes.
type LogUsage struct {
	Files     int   `json:"files" yaml:"files"`
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes"`
}
