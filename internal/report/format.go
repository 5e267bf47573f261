package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatMB renders a megabyte value with two decimals, as the console
// tables show it.
func FormatMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', 2, 64)
}

// FormatSize renders a byte count as "12.34 MB (13 MB)": the exact MiB value
// followed by a human-readable SI size.
func FormatSize(bytes int64) string {
	return FormatMB(float64(bytes)/(1024*1024)) + " MB (" + humanize.Bytes(uint64(max(bytes, 0))) + ")"
}

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
