package markdown

import (
	"strings"
	"time"
)

// displayLayout is the canonical display form for all timestamps.
const displayLayout = "2006-01-02 15:04:05"

// timestampLayouts are the accepted ISO-8601 input shapes, tried in
// order. A trailing Z is normalized to +00:00 before matching.
var timestampLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp formats an export date string for display. Parsing is
// best-effort: a string that does not match any accepted layout is
// returned unchanged.
func Timestamp(date string) string {
	normalized := date
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format(displayLayout)
		}
	}
	return date
}
