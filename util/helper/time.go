package helper_util

import (
	"fmt"
	"time"
)

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// ParseTimeRange parses optional RFC3339 bounds. A missing end is now and a
// missing start is window before the end.
func ParseTimeRange(from, to string, now time.Time, window time.Duration) (time.Time, time.Time, error) {
	end := now
	if to != "" {
		t, err := ParseTime(to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
		}
		end = t
	}

	start := end.Add(-window)
	if from != "" {
		t, err := ParseTime(from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
		}
		start = t
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("from %s is after to %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}
