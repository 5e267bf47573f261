package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/anomredux/boomi-du/internal/domain"
)

// CSVHeader is the column layout of the exported report. Downstream tooling
// depends on this order.
var CSVHeader = []string{
	"Process Name",
	"Process ID",
	"Process Type",
	"Folder Path",
	"Execution Count",
	"Total Size (Bytes)",
	"Total Size (MB)",
	"Average Size (MB)",
	"Max Size (MB)",
	"Process Definition Size (MB)",
	"Execution Logs Size (MB)",
}

// csvMBPrecision is the number of decimals written for MB columns.
const csvMBPrecision = 6

func formatCSVMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', csvMBPrecision, 64)
}

// CSVRecord returns the CSV fields for one process.
func CSVRecord(s domain.ProcessUsageStats) []string {
	return []string{
		s.Info.Name,
		s.Info.ID,
		s.Info.Type,
		s.Info.Folder,
		strconv.Itoa(s.ExecutionCount),
		strconv.FormatInt(s.TotalSizeBytes, 10),
		formatCSVMB(s.TotalSizeMB()),
		formatCSVMB(s.AvgSizeMB()),
		formatCSVMB(s.MaxSizeMB()),
		formatCSVMB(s.DefinitionSizeMB()),
		formatCSVMB(s.ExecutionSizeMB()),
	}
}

// WriteCSV writes the header and one row per entry of stats, in order.
func WriteCSV(w io.Writer, stats []domain.ProcessUsageStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range stats {
		if err := cw.Write(CSVRecord(s)); err != nil {
			return fmt.Errorf("write csv row %s: %w", s.Info.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile replaces path with the CSV report.
func WriteCSVFile(path string, stats []domain.ProcessUsageStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WriteCSV(f, stats); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}
