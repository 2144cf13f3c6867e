//go:build unit || e2e

package builder

import (
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/usecase/queries"
	"deskbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SeatID     uuid.UUID
	SeatNumber string
	Day        time.Time
	SeatType   string
	Status     string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		SeatID:     uuid.New(),
		SeatNumber: "S01",
		// Monday, safely on the designated schedule
		Day:      time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		SeatType: "designated",
		Status:   "confirmed",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.UserID, b.SeatID, b.Day, booking.SeatType(b.SeatType))
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:         b.ID,
		UserID:     b.UserID,
		UserEmail:  "test@example.com",
		SeatID:     b.SeatID,
		SeatNumber: b.SeatNumber,
		Day:        b.Day,
		SeatType:   b.SeatType,
		Status:     b.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:       b.ID,
		UserID:   b.UserID,
		SeatID:   b.SeatID,
		Day:      b.Day,
		Status:   b.Status,
		SeatType: b.SeatType,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithSeatID(seatID uuid.UUID) *BookingBuilder {
	b.SeatID = seatID
	return b
}

func (b *BookingBuilder) WithDay(day time.Time) *BookingBuilder {
	b.Day = day
	return b
}

func (b *BookingBuilder) AsFloater() *BookingBuilder {
	b.SeatType = "floater"
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
