package models

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted on records, tried in order. Sources ship either full
// ISO timestamps or bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a record date string and truncates it to UTC midnight so
// day arithmetic is exact.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// Midnight truncates a time to UTC midnight.
func Midnight(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days elapsed from one date to another,
// truncated toward zero. Both arguments must already be midnight-aligned.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
