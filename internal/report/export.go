package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/anomredux/boomi-du/internal/domain"
)

// Document is the structured form of a report, used by the json and yaml
// output formats.
type Document struct {
	Summary   Summary      `json:"summary" yaml:"summary"`
	Processes []ProcessRow `json:"processes" yaml:"processes"`
}

// ProcessRow is one process with its derived megabyte figures.
type ProcessRow struct {
	domain.ProcessUsageStats `yaml:",inline"`
	TotalSizeMB              float64 `json:"total_size_mb" yaml:"total_size_mb"`
	AvgSizeMB                float64 `json:"avg_size_mb" yaml:"avg_size_mb"`
	MaxSizeMB                float64 `json:"max_size_mb" yaml:"max_size_mb"`
}

func NewDocument(summary Summary, stats []domain.ProcessUsageStats) Document {
	doc := Document{Summary: summary, Processes: make([]ProcessRow, 0, len(stats))}
	for _, s := range stats {
		doc.Processes = append(doc.Processes, ProcessRow{
			ProcessUsageStats: s,
			TotalSizeMB:       s.TotalSizeMB(),
			AvgSizeMB:         s.AvgSizeMB(),
			MaxSizeMB:         s.MaxSizeMB(),
		})
	}
	return doc
}

// Encode writes doc to w in format ("json" or "yaml").
func Encode(w io.Writer, format string, doc Document) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
