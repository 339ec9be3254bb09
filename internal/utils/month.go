package utils

import (
	"fmt"
	"time"
)

// MonthKey derives the dashboard month bucket (YYYY-MM) from a timestamp
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// ParseMonthKey validates a YYYY-MM month key and returns its first day
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}
