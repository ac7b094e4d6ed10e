package model

import "time"

// TimestampLayout is ISO-8601 in UTC with exactly three fractional digits,
// e.g. 2026-01-02T03:04:05.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
