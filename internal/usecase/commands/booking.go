package commands

import (
	"context"
	"encoding/json"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/domain/user"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/dateutil"
	"deskbook/internal/pkg/errs"
	"deskbook/internal/usecase/queries"
	"deskbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrUserInactive            = errs.New("user is inactive")
	ErrSeatNotFound            = errs.New("seat not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrNotBookingOwner         = errs.New("booking not owned by user")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInvalidDay              = errs.New("invalid booking day")
	ErrRuleRejected            = errs.New("booking rejected by attendance policy")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// RuleViolationError carries the first policy check that failed, so the
// handler can answer with the concrete reason instead of a blanket denial.
type RuleViolationError struct {
	Reason booking.Reason
}

func (e *RuleViolationError) Error() string {
	return e.Reason.Message()
}

func (e *RuleViolationError) Is(target error) bool {
	return target == ErrRuleRejected
}

type ReserveBookingRequest struct {
	SeatID uuid.UUID
	Day    string
}

type BookingCommands interface {
	Reserve(ctx context.Context, req ReserveBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	engine         *booking.Engine
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	officeLocation *time.Location,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		engine:         booking.NewEngine(clk, officeLocation),
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) Reserve(ctx context.Context, req ReserveBookingRequest, userID uuid.UUID) (*queries.BookingView, error) {
	day, err := dateutil.ParseDay(req.Day)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDay)
	}

	batch, err := uc.validateRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.uow.CommandReads().SeatByID(ctx, req.SeatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The snapshot and the insert share one transaction; racing requests
		// that slip past the counts are settled by the partial unique indexes.
		rows, derr := tx.Reads().ConfirmedSeatsByDay(ctx, day)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		decision := uc.engine.Evaluate(batch, day, booking.BuildSnapshot(day, toOccupancyRows(rows)))
		if !decision.Allowed {
			return &RuleViolationError{Reason: decision.Reason}
		}

		entity, derr := booking.NewBooking(userID, req.SeatID, day, decision.SeatType)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrSeatNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		return uc.enqueueBookingJob(ctx, tx, "booking_confirmed", id)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store
	view, err := uc.bookingQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if snap.UserID != actorID {
			return ErrNotBookingOwner
		}

		// Cancelling an already cancelled booking is a no-op, not an error.
		if snap.Status == booking.StatusCancelled.String() {
			return nil
		}

		if derr := tx.Bookings().UpdateStatusCancelled(ctx, tx.DB(), bookingID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		return uc.enqueueBookingJob(ctx, tx, "booking_cancelled", bookingID)
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) validateRequester(ctx context.Context, userID uuid.UUID) (user.Batch, error) {
	snap, err := uc.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return "", ErrUserInactive
	}

	batch, err := user.NewBatch(snap.Batch)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}
	return batch, nil
}

func (uc *bookingUseCaseImpl) enqueueBookingJob(ctx context.Context, tx shared.Tx, topic string, bookingID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, uc.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toOccupancyRows(rows []shared.ConfirmedSeatRow) []booking.ConfirmedBooking {
	out := make([]booking.ConfirmedBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, booking.ConfirmedBooking{
			UserID:     row.UserID.String(),
			SeatID:     row.SeatID.String(),
			SeatType:   booking.SeatType(row.SeatType),
			OwnerBatch: user.Batch(row.OwnerBatch),
		})
	}
	return out
}
