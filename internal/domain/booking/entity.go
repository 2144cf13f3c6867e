package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"deskbook/internal/pkg/dateutil"
)

var (
	ErrInvalidDay       = errors.New("booking day must be a canonical UTC day")
	ErrInvalidSeatType  = errors.New("invalid seat type")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// Booking is one (user, seat, day) reservation. The seat type is fixed at
// creation by the rule engine; status only ever moves confirmed → cancelled.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	seatID    uuid.UUID
	day       time.Time
	status    Status
	seatType  SeatType
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking constructs a confirmed booking for an Allow decision. The day
// must already be a canonical UTC day key.
func NewBooking(userID, seatID uuid.UUID, day time.Time, seatType SeatType) (*Booking, error) {
	if !day.Equal(dateutil.DayKeyOf(day)) {
		return nil, ErrInvalidDay
	}
	if !seatType.IsValid() {
		return nil, ErrInvalidSeatType
	}
	return &Booking{
		id:       uuid.New(),
		userID:   userID,
		seatID:   seatID,
		day:      day,
		status:   StatusConfirmed,
		seatType: seatType,
	}, nil
}

func ReconstructBooking(
	id, userID, seatID uuid.UUID,
	day time.Time,
	status Status,
	seatType SeatType,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		seatID:    seatID,
		day:       day,
		status:    status,
		seatType:  seatType,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) SeatID() uuid.UUID    { return b.seatID }
func (b *Booking) Day() time.Time       { return b.day }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) SeatType() SeatType   { return b.seatType }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
