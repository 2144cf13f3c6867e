package booking

import (
	"time"

	"deskbook/internal/domain/user"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/dateutil"
)

const (
	// DesignatedCapacity is the number of physical designated seats; the
	// scheduled batch can never hold more confirmed designated bookings.
	DesignatedCapacity = 40
	// FloaterBaseCapacity is the fixed floater pool before surplus
	// designated seats are released into it.
	FloaterBaseCapacity = 10
	// HorizonDays is how far ahead (inclusive) any booking may be placed.
	HorizonDays = 14
	// FloaterCutoffHour is the office-local hour at which next-day floater
	// bookings unlock.
	FloaterCutoffHour = 15
)

// Engine evaluates whether a (user, day) request is permitted and which seat
// class it gets. Evaluation is pure: it reads the snapshot and the clock, and
// mutates nothing. Capacity decisions made here are advisory; the store's
// uniqueness constraints settle races.
type Engine struct {
	clock clock.Clock
	// Office timezone; only the floater cutoff check is local, everything
	// else runs on canonical UTC days.
	loc *time.Location
}

func NewEngine(clk clock.Clock, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{clock: clk, loc: loc}
}

// Evaluate runs the checks in order; the first failing check wins. The
// current instant is captured once so the horizon and cutoff checks cannot
// disagree about what "now" is within a single call.
func (e *Engine) Evaluate(batch user.Batch, day time.Time, snap Snapshot) Decision {
	now := e.clock.Now()
	today := dateutil.DayKeyOf(now)
	day = dateutil.DayKeyOf(day)

	if IsWeekend(day) {
		return deny(ReasonWeekend)
	}

	maxDay := today.AddDate(0, 0, HorizonDays)
	if day.Before(today) || day.After(maxDay) {
		return deny(ReasonOutsideHorizon)
	}

	scheduled, _ := ScheduledBatchFor(day)

	if batch == scheduled {
		if snap.ActiveDesignated < DesignatedCapacity {
			return allow(SeatTypeDesignated)
		}
		return deny(ReasonBatchCapacityReached)
	}

	// Off-schedule batch: floater path.
	if day.Equal(today) {
		return deny(ReasonSameDayFloater)
	}

	tomorrow := today.AddDate(0, 0, 1)
	if day.After(tomorrow) {
		return deny(ReasonFloaterAdvanceWindow)
	}

	if !e.floaterUnlocked(now) {
		return deny(ReasonFloaterCutoff)
	}

	if FloaterAvailable(snap) > 0 {
		return allow(SeatTypeFloater)
	}
	return deny(ReasonFloaterPoolFull)
}

// FloaterAvailable computes the dynamic floater capacity left for a day:
// the fixed pool plus every designated seat the scheduled batch has not
// claimed, minus floater bookings already taken.
func FloaterAvailable(snap Snapshot) int {
	released := DesignatedCapacity - snap.ActiveDesignated
	if released < 0 {
		released = 0
	}
	return FloaterBaseCapacity + released - snap.Floater
}

// floaterUnlocked reports whether the office-local wall clock has passed
// today's 15:00 cutoff.
func (e *Engine) floaterUnlocked(now time.Time) bool {
	local := now.In(e.loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), FloaterCutoffHour, 0, 0, 0, e.loc)
	return !local.Before(cutoff)
}
