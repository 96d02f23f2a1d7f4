package usecase

import "time"

// dayLayout is the calendar-day key format used by the daily activity join.
const dayLayout = "2006-01-02"

// timestampLayouts are tried in order when reading date strings back out
// of a table. RFC 3339 is what normalization emits; the others cover
// hand-edited or externally produced CSVs.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a table date string. The second return value is
// false when the string is empty or matches no known layout; absence of a
// valid timestamp is a plain no-value, never an error.
func ParseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a timestamp in the ISO-8601 form the tables
// store. The zero time maps to the empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
