package loader

import (
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"golang.org/x/text/unicode/norm"
)

// findText returns the trimmed text of the first node matching expr, or "".
func findText(top *xmlquery.Node, expr string) string {
	n := xmlquery.FindOne(top, expr)
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// normalizeName puts display names into NFC so names typed on different
// platforms compare equal.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// parseTimestamp accepts ISO-8601 date-times with or without a zone; values
// without one are taken as UTC.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
