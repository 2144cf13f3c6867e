package booking

import (
	"time"

	"deskbook/internal/domain/user"
)

// ConfirmedBooking is the slice of a confirmed record the snapshot math
// needs: who holds it (their batch) and under which seat class it was booked.
type ConfirmedBooking struct {
	UserID     string
	SeatID     string
	SeatType   SeatType
	OwnerBatch user.Batch
}

// Snapshot is the occupancy state of a single day as seen at one instant.
// The counts can be stale by the time a write lands; the store's uniqueness
// constraints are the final arbiter, not these numbers.
type Snapshot struct {
	// Confirmed designated-class bookings held by members of the day's
	// scheduled batch.
	ActiveDesignated int
	// Confirmed floater-class bookings, regardless of owner.
	Floater int
}

// BuildSnapshot partitions the day's confirmed bookings into the two counts
// the rule engine works with. Designated bookings held by off-schedule owners
// (possible only if the schedule rule ever changes between create and read)
// count toward neither pool, matching the source behavior.
func BuildSnapshot(day time.Time, rows []ConfirmedBooking) Snapshot {
	scheduled, ok := ScheduledBatchFor(day)

	var snap Snapshot
	for _, row := range rows {
		switch row.SeatType {
		case SeatTypeFloater:
			snap.Floater++
		case SeatTypeDesignated:
			if ok && row.OwnerBatch == scheduled {
				snap.ActiveDesignated++
			}
		}
	}
	return snap
}
