package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anomredux/boomi-du/internal/domain"
	"github.com/anomredux/boomi-du/internal/theme"
)

// Column widths of the identifying columns; longer values are truncated.
const (
	nameWidth = 39
	idWidth   = 37
)

var tableHeaders = []string{"Process Name", "Process ID", "Count", "Total MB", "Avg MB", "Max MB"}

// firstNumericColumn is the index of the first right-aligned column.
const firstNumericColumn = 2

// RenderTable renders the first topN entries of stats under title, followed
// by a "Showing top N of M processes" footer.
func RenderTable(title string, stats []domain.ProcessUsageStats, topN int) string {
	shown := stats[:min(topN, len(stats))]

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.BorderStyle).
		Headers(tableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			style := theme.CellStyle
			if col >= firstNumericColumn {
				style = theme.NumberCellStyle
			}
			return theme.RowBackground(style, row)
		})

	for _, s := range shown {
		t.Row(
			truncate(s.Info.Name, nameWidth),
			truncate(s.Info.ID, idWidth),
			strconv.Itoa(s.ExecutionCount),
			FormatMB(s.TotalSizeMB()),
			FormatMB(s.AvgSizeMB()),
			FormatMB(s.MaxSizeMB()),
		)
	}

	var sb strings.Builder
	sb.WriteString(theme.Title(title))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
	sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("Showing top %d of %d processes", len(shown), len(stats))))
	sb.WriteString("\n")
	return sb.String()
}
