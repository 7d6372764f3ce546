package utils

import (
	"fmt"
	"time"
)

// ParseUserTime accepts the two timestamp forms user input arrives in:
// full RFC3339, or a bare YYYY-MM-DD date. When endOfDay is set, a bare
// date resolves to 23:59:59 of that day, so "expires 2026-12-31" keeps
// a key valid through the whole last day.
func ParseUserTime(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", value)
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
