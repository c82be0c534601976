// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the date and datetime shapes the content store emits for date fields

package time

import (
	"strings"
	"time"
)

// Formats seen in CMS date fields, most specific first. Date fields edited in
// the web app carry minutes but no seconds ("2024-03-15T09:30+01:00").
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Unparseable input yields the zero time.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

