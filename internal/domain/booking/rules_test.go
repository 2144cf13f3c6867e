//go:build unit

package booking_test

import (
	"testing"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/domain/user"
	"deskbook/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures run on Monday 2025-12-29 (ISO week 1, odd): batch A is scheduled
// Mon-Wed, so batch B takes the floater path on those days.
func newEngine(t *testing.T, now string) *booking.Engine {
	t.Helper()
	instant, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)
	return booking.NewEngine(clock.NewFakeClock(instant.UTC()), time.UTC)
}

func TestEngine_Evaluate_Weekend(t *testing.T) {
	engine := newEngine(t, "2025-12-29T10:00:00Z")

	decision := engine.Evaluate(user.BatchA, day(t, "2026-01-03"), booking.Snapshot{})

	assert.False(t, decision.Allowed)
	assert.Equal(t, booking.ReasonWeekend, decision.Reason)
}

func TestEngine_Evaluate_Horizon(t *testing.T) {
	engine := newEngine(t, "2025-12-29T10:00:00Z")

	t.Run("past day is rejected", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-26"), booking.Snapshot{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonOutsideHorizon, decision.Reason)
	})

	t.Run("day fourteen is the last bookable day", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchA, day(t, "2026-01-12"), booking.Snapshot{})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeDesignated, decision.SeatType)
	})

	t.Run("day fifteen is rejected", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchA, day(t, "2026-01-13"), booking.Snapshot{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonOutsideHorizon, decision.Reason)
	})
}

func TestEngine_Evaluate_ScheduledBatch(t *testing.T) {
	engine := newEngine(t, "2025-12-29T10:00:00Z")
	today := day(t, "2025-12-29")

	t.Run("scheduled batch gets a designated seat", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchA, today, booking.Snapshot{ActiveDesignated: 0})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeDesignated, decision.SeatType)
	})

	t.Run("seat forty is still granted", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchA, today, booking.Snapshot{ActiveDesignated: 39})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeDesignated, decision.SeatType)
	})

	t.Run("full designated block rejects the scheduled batch", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchA, today, booking.Snapshot{ActiveDesignated: 40})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonBatchCapacityReached, decision.Reason)
	})

	t.Run("scheduled batch is never pushed to the floater pool", func(t *testing.T) {
		// Even with floater seats free, a full designated block is a denial.
		decision := engine.Evaluate(user.BatchA, today, booking.Snapshot{ActiveDesignated: 40, Floater: 0})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonBatchCapacityReached, decision.Reason)
	})
}

func TestEngine_Evaluate_FloaterWindow(t *testing.T) {
	t.Run("same day floater is blocked", func(t *testing.T) {
		engine := newEngine(t, "2025-12-29T16:00:00Z")
		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-29"), booking.Snapshot{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonSameDayFloater, decision.Reason)
	})

	t.Run("two days ahead is outside the floater window", func(t *testing.T) {
		engine := newEngine(t, "2025-12-29T16:00:00Z")
		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-31"), booking.Snapshot{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonFloaterAdvanceWindow, decision.Reason)
	})

	t.Run("next day before the cutoff is blocked", func(t *testing.T) {
		engine := newEngine(t, "2025-12-29T14:59:59Z")
		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-30"), booking.Snapshot{})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonFloaterCutoff, decision.Reason)
	})

	t.Run("next day at exactly the cutoff is granted", func(t *testing.T) {
		engine := newEngine(t, "2025-12-29T15:00:00Z")
		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-30"), booking.Snapshot{})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeFloater, decision.SeatType)
	})

	t.Run("cutoff follows the office timezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		instant, err := time.Parse(time.RFC3339, "2025-12-29T06:30:00Z") // 15:30 JST
		require.NoError(t, err)
		engine := booking.NewEngine(clock.NewFakeClock(instant), tokyo)

		decision := engine.Evaluate(user.BatchB, day(t, "2025-12-30"), booking.Snapshot{})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeFloater, decision.SeatType)
	})
}

func TestEngine_Evaluate_FloaterPool(t *testing.T) {
	engine := newEngine(t, "2025-12-29T15:00:00Z")
	tomorrow := day(t, "2025-12-30")

	t.Run("fully claimed designated block leaves the base pool", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchB, tomorrow, booking.Snapshot{ActiveDesignated: 40, Floater: 9})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeFloater, decision.SeatType)
	})

	t.Run("base pool exhausted", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchB, tomorrow, booking.Snapshot{ActiveDesignated: 40, Floater: 10})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonFloaterPoolFull, decision.Reason)
	})

	t.Run("unclaimed designated seats are released to floaters", func(t *testing.T) {
		// 10 base + 10 released - 19 taken = 1 left.
		decision := engine.Evaluate(user.BatchB, tomorrow, booking.Snapshot{ActiveDesignated: 30, Floater: 19})
		assert.True(t, decision.Allowed)
		assert.Equal(t, booking.SeatTypeFloater, decision.SeatType)
	})

	t.Run("released seats do not stretch past the dynamic limit", func(t *testing.T) {
		decision := engine.Evaluate(user.BatchB, tomorrow, booking.Snapshot{ActiveDesignated: 30, Floater: 20})
		assert.False(t, decision.Allowed)
		assert.Equal(t, booking.ReasonFloaterPoolFull, decision.Reason)
	})
}

func TestFloaterAvailable(t *testing.T) {
	cases := []struct {
		name string
		snap booking.Snapshot
		want int
	}{
		{name: "empty day", snap: booking.Snapshot{}, want: 50},
		{name: "designated fully claimed", snap: booking.Snapshot{ActiveDesignated: 40}, want: 10},
		{name: "half claimed", snap: booking.Snapshot{ActiveDesignated: 20, Floater: 5}, want: 25},
		{name: "pool exactly full", snap: booking.Snapshot{ActiveDesignated: 40, Floater: 10}, want: 0},
		{name: "over capacity clamps released seats at zero", snap: booking.Snapshot{ActiveDesignated: 41, Floater: 10}, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.FloaterAvailable(c.snap))
		})
	}
}
