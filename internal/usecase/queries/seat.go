package queries

import (
	"context"

	"github.com/google/uuid"

	"deskbook/internal/infra"
	"deskbook/internal/pkg/errs"
)

var ErrSeatNotFound = errs.New("seat not found")

type SeatQueries interface {
	List(ctx context.Context) ([]*SeatView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SeatView, error)
}

type SeatViewRepo interface {
	FindAll(ctx context.Context) ([]*SeatView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SeatView, error)
}

type seatQueriesImpl struct {
	repo SeatViewRepo
}

func NewSeatQueries(repo SeatViewRepo) SeatQueries {
	return &seatQueriesImpl{repo: repo}
}

func (q *seatQueriesImpl) List(ctx context.Context) ([]*SeatView, error) {
	return q.repo.FindAll(ctx)
}

func (q *seatQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SeatView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return view, nil
}
