package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Batch     string
	SquadName string
	IsActive  bool
}

type SeatSnapshot struct {
	ID     uuid.UUID
	Number string
	Zone   string
}

type BookingSnapshot struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	SeatID   uuid.UUID
	Day      time.Time
	Status   string
	SeatType string
}

// ConfirmedSeatRow is one confirmed booking of a day as the occupancy math
// sees it.
type ConfirmedSeatRow struct {
	UserID     uuid.UUID
	SeatID     uuid.UUID
	SeatType   string
	OwnerBatch string
}
