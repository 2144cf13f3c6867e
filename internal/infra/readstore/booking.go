package readstore

import (
	"context"
	"errors"
	"time"

	"deskbook/internal/infra"
	"deskbook/internal/infra/db"
	"deskbook/internal/pkg/dateutil"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.user_id, u.email, b.seat_id, s.number, b.day, b.seat_type, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN seats s ON s.id = b.seat_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.UserEmail, &view.SeatID, &view.SeatNumber,
		&view.Day, &view.SeatType, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.Day = dateutil.DayKeyOf(view.Day)
	return &view, nil
}

// FindByUserID lists the user's confirmed bookings only; cancelled records
// stay queryable by ID and through the utilization aggregates.
func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.seat_id, s.number, b.day, b.seat_type, b.status, b.created_at
		FROM bookings b
		JOIN seats s ON s.id = b.seat_id
		WHERE b.user_id = $1 AND b.status = 'confirmed'
		ORDER BY b.day DESC, b.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.SeatID, &item.SeatNumber, &item.Day, &item.SeatType, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Day = dateutil.DayKeyOf(item.Day)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}

// FindConfirmedByDay matches by day range rather than equality, so rows
// written under a historical timezone offset still count.
func (r *BookingReadStore) FindConfirmedByDay(ctx context.Context, day time.Time) ([]*queries.DayOccupancyItem, error) {
	const query = `
		SELECT b.id, b.user_id, u.email, u.squad_name, u.batch, b.seat_id, s.number, b.seat_type
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN seats s ON s.id = b.seat_id
		WHERE b.status = 'confirmed' AND b.day BETWEEN $1 AND $2
		ORDER BY s.number`

	start, end := dateutil.DayRange(day)
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed bookings by day", err)
	}
	defer rows.Close()

	items := make([]*queries.DayOccupancyItem, 0)
	for rows.Next() {
		var item queries.DayOccupancyItem
		if err := rows.Scan(
			&item.BookingID, &item.UserID, &item.UserEmail, &item.SquadName,
			&item.OwnerBatch, &item.SeatID, &item.SeatNumber, &item.SeatType,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancy rows", err)
	}

	return items, nil
}

func (r *BookingReadStore) CountConfirmedByDayRange(ctx context.Context, from, to time.Time) ([]*queries.DailyUtilization, error) {
	const query = `
		SELECT b.day,
		       count(*) FILTER (WHERE b.seat_type = 'designated') AS designated,
		       count(*) FILTER (WHERE b.seat_type = 'floater') AS floater,
		       count(*) AS total
		FROM bookings b
		WHERE b.status = 'confirmed' AND b.day BETWEEN $1 AND $2
		GROUP BY b.day
		ORDER BY b.day`

	start, _ := dateutil.DayRange(from)
	_, end := dateutil.DayRange(to)
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by day range", err)
	}
	defer rows.Close()

	days := make([]*queries.DailyUtilization, 0)
	for rows.Next() {
		var d queries.DailyUtilization
		if err := rows.Scan(&d.Day, &d.Designated, &d.Floater, &d.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan utilization row", err)
		}
		d.Day = dateutil.DayKeyOf(d.Day)
		days = append(days, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate utilization rows", err)
	}

	return days, nil
}

func (r *BookingReadStore) CountSeats(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM seats").Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count seats", err)
	}
	return count, nil
}
