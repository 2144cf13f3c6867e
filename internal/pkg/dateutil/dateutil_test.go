//go:build unit

package dateutil_test

import (
	"testing"
	"time"

	"deskbook/internal/pkg/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Run("valid date yields UTC midnight", func(t *testing.T) {
		got, err := dateutil.ParseDay("2026-01-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), got)
	})

	cases := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "wrong separator", input: "2026/01/05"},
		{name: "datetime instead of date", input: "2026-01-05T10:00:00Z"},
		{name: "month out of range", input: "2026-13-05"},
		{name: "not a date", input: "tomorrow"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := dateutil.ParseDay(c.input)
			require.ErrorIs(t, err, dateutil.ErrInvalidDayFormat)
		})
	}
}

func TestDayKeyOf(t *testing.T) {
	t.Run("UTC afternoon collapses to midnight", func(t *testing.T) {
		in := time.Date(2026, 1, 5, 17, 45, 12, 0, time.UTC)
		assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), dateutil.DayKeyOf(in))
	})

	t.Run("local instants key by their UTC date", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		// 08:00 JST is still the previous day in UTC.
		in := time.Date(2026, 1, 5, 8, 0, 0, 0, tokyo)
		assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), dateutil.DayKeyOf(in))
	})
}

func TestDayRange(t *testing.T) {
	start, end := dateutil.DayRange(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 5, 23, 59, 59, 999000000, time.UTC), end)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 1, 5, 1, 0, 0, 0, time.UTC)
	night := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	next := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, dateutil.SameDay(morning, night))
	assert.False(t, dateutil.SameDay(night, next))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2026-01-05", dateutil.Format(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
}
