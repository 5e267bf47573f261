package report

import (
	"fmt"
	"strings"

	"github.com/anomredux/boomi-du/internal/domain"
	"github.com/anomredux/boomi-du/internal/theme"
)

// Summary holds the run-wide totals printed after the tables.
type Summary struct {
	Processes         int             `json:"processes" yaml:"processes"`
	Executions        int             `json:"executions" yaml:"executions"`
	CombinedSizeBytes int64           `json:"combined_size_bytes" yaml:"combined_size_bytes"`
	HistorySizeBytes  int64           `json:"history_size_bytes" yaml:"history_size_bytes"`
	ContainerLogs     domain.LogUsage `json:"container_logs" yaml:"container_logs"`
	UnknownNames      []string        `json:"unknown_names,omitempty" yaml:"unknown_names,omitempty"`
	Warnings          int             `json:"warnings" yaml:"warnings"`
	UnknownDiagnostic string          `json:"-" yaml:"-"`
}

// NewSummary totals the reported stats. History size counts every loaded
// execution, including those whose bucket was not reported.
func NewSummary(stats []domain.ProcessUsageStats, executions []domain.ExecutionRecord, logs domain.LogUsage) Summary {
	s := Summary{Processes: len(stats), ContainerLogs: logs}
	for _, st := range stats {
		s.Executions += st.ExecutionCount
		s.CombinedSizeBytes += st.TotalSizeBytes
	}
	for _, e := range executions {
		s.HistorySizeBytes += e.SizeBytes
	}
	return s
}

// RenderSummary renders the closing summary block.
func RenderSummary(s Summary) string {
	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%s %s\n", theme.LabelStyle.Render(label), value)
	}

	sb.WriteString(theme.Title("SUMMARY"))
	sb.WriteString("\n")
	line("Total processes analyzed:", FormatNumber(int64(s.Processes)))
	line("Total executions found:", FormatNumber(int64(s.Executions)))
	line("Total combined size:", FormatSize(s.CombinedSizeBytes))
	line("Execution history size:", FormatSize(s.HistorySizeBytes))
	line("Container logs:", fmt.Sprintf("%s in %d files", FormatSize(s.ContainerLogs.SizeBytes), s.ContainerLogs.Files))

	if s.UnknownDiagnostic != "" {
		sb.WriteString(theme.WarningStyle.Render("Warning: " + s.UnknownDiagnostic))
		sb.WriteString("\n")
	}
	if s.Warnings > 0 {
		sb.WriteString(theme.WarningStyle.Render(fmt.Sprintf("%d entries were skipped with warnings", s.Warnings)))
		sb.WriteString("\n")
	}
	sb.WriteString(theme.MutedStyle.Render("Container logs are shared across all processes and are not included in per-process sizes."))
	sb.WriteString("\n")
	return sb.String()
}
