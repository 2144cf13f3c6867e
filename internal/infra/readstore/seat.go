package readstore

import (
	"context"
	"errors"

	"deskbook/internal/infra"
	"deskbook/internal/infra/db"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SeatReadStore struct {
	db db.DBTX
}

func NewSeatReadStore(dbtx db.DBTX) *SeatReadStore {
	return &SeatReadStore{db: dbtx}
}

func (r *SeatReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SeatView, error) {
	const query = `
		SELECT id, number, zone, created_at, updated_at
		FROM seats
		WHERE id = $1`

	var view queries.SeatView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Number, &view.Zone, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat by ID", err)
	}

	return &view, nil
}

func (r *SeatReadStore) FindAll(ctx context.Context) ([]*queries.SeatView, error) {
	const query = `
		SELECT id, number, zone, created_at, updated_at
		FROM seats
		ORDER BY number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all seats", err)
	}
	defer rows.Close()

	seats := make([]*queries.SeatView, 0)
	for rows.Next() {
		var view queries.SeatView
		if err := rows.Scan(&view.ID, &view.Number, &view.Zone, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat row", err)
		}
		seats = append(seats, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate seat rows", err)
	}

	return seats, nil
}
