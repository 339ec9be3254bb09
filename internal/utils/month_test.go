package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-08", MonthKey(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01", MonthKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonthKey(t *testing.T) {
	t.Run("Valid month key", func(t *testing.T) {
		parsed, err := ParseMonthKey("2026-08")
		require.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.August, parsed.Month())
		assert.Equal(t, 1, parsed.Day())
	})

	t.Run("Round trip with MonthKey", func(t *testing.T) {
		parsed, err := ParseMonthKey("2025-12")
		require.NoError(t, err)
		assert.Equal(t, "2025-12", MonthKey(parsed))
	})

	t.Run("Invalid keys", func(t *testing.T) {
		for _, key := range []string{"August", "2026", "2026-13", "2026-08-01", ""} {
			_, err := ParseMonthKey(key)
			assert.Error(t, err, "key %q should be rejected", key)
		}
	})
}
