package booking

import (
	"time"

	"deskbook/internal/domain/user"
)

// Rotating two-batch attendance schedule.
//
// Odd ISO weeks:  Mon-Wed belong to batch A, Thu-Fri to batch B.
// Even ISO weeks: the assignment is reversed.
// Weekends belong to no batch.

// ScheduledBatchFor returns the batch expected in-office on the given
// canonical day. ok is false on weekends.
func ScheduledBatchFor(day time.Time) (batch user.Batch, ok bool) {
	weekday := day.UTC().Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return "", false
	}

	_, week := day.UTC().ISOWeek()
	oddWeek := week%2 == 1

	earlyWeek := weekday == time.Monday || weekday == time.Tuesday || weekday == time.Wednesday
	if oddWeek == earlyWeek {
		return user.BatchA, true
	}
	return user.BatchB, true
}

// IsWeekend reports whether the canonical day falls on Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	weekday := day.UTC().Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
