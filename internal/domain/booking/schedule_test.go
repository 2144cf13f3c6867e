//go:build unit

package booking_test

import (
	"testing"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.UTC()
}

func TestScheduledBatchFor(t *testing.T) {
	// 2025-12-29 (Mon) opens ISO week 1 of 2026; 2026-01-05 opens week 2.
	cases := []struct {
		name  string
		day   string
		batch user.Batch
		ok    bool
	}{
		{name: "odd week Monday is batch A", day: "2025-12-29", batch: user.BatchA, ok: true},
		{name: "odd week Wednesday is batch A", day: "2025-12-31", batch: user.BatchA, ok: true},
		{name: "odd week Thursday is batch B", day: "2026-01-01", batch: user.BatchB, ok: true},
		{name: "odd week Friday is batch B", day: "2026-01-02", batch: user.BatchB, ok: true},
		{name: "even week Monday is batch B", day: "2026-01-05", batch: user.BatchB, ok: true},
		{name: "even week Wednesday is batch B", day: "2026-01-07", batch: user.BatchB, ok: true},
		{name: "even week Thursday is batch A", day: "2026-01-08", batch: user.BatchA, ok: true},
		{name: "even week Friday is batch A", day: "2026-01-09", batch: user.BatchA, ok: true},
		{name: "Saturday belongs to no batch", day: "2026-01-03", ok: false},
		{name: "Sunday belongs to no batch", day: "2026-01-04", ok: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			batch, ok := booking.ScheduledBatchFor(day(t, c.day))
			assert.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.batch, batch)
			}
		})
	}
}

func TestScheduledBatchFor_AlternatesAcrossWeeks(t *testing.T) {
	// The same weekday must flip batches between consecutive weeks.
	monday := day(t, "2025-12-29")
	for i := 0; i < 6; i++ {
		cur, ok := booking.ScheduledBatchFor(monday.AddDate(0, 0, i*7))
		require.True(t, ok)
		next, ok := booking.ScheduledBatchFor(monday.AddDate(0, 0, (i+1)*7))
		require.True(t, ok)
		assert.Equal(t, cur.Other(), next)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, booking.IsWeekend(day(t, "2026-01-02")))
	assert.True(t, booking.IsWeekend(day(t, "2026-01-03")))
	assert.True(t, booking.IsWeekend(day(t, "2026-01-04")))
	assert.False(t, booking.IsWeekend(day(t, "2026-01-05")))
}
