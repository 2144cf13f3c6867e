package repository

import (
	"context"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create inserts a confirmed booking. The partial unique indexes on
// (user_id, day) and (seat_id, day) reject double bookings at the store
// level; such failures surface as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, user_id, seat_id, day, status, seat_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.SeatID(), b.Day(), b.Status().String(), b.SeatType().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatusCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'confirmed'`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}

	return nil
}
