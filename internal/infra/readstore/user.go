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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, role, batch, squad_name, is_active
		FROM users
		WHERE id = $1`

	var view queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.Batch, &view.SquadName, &view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}
