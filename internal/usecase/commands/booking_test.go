//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"
	"deskbook/internal/usecase/shared"
	"deskbook/tests/common/builder"
	queriesmock "deskbook/tests/mock/queries"
	sharedmock "deskbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday of an odd ISO week: batch A holds the designated schedule.
const (
	scheduledDay = "2025-12-29"
	testNow      = "2025-12-22T09:00:00Z"
)

type useCaseMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookingRepo  *sharedmock.MockBookingRepository
	notification *sharedmock.MockNotificationRepository
	queries      *queriesmock.MockBookingQueries
}

func newUseCase(t *testing.T, now string) (commands.BookingCommands, *useCaseMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &useCaseMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		bookingRepo:  sharedmock.NewMockBookingRepository(ctrl),
		notification: sharedmock.NewMockNotificationRepository(ctrl),
		queries:      queriesmock.NewMockBookingQueries(ctrl),
	}

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookingRepo).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notification).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	instant, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)

	uc := commands.NewBookingUseCase(m.uow, m.queries, clock.NewFakeClock(instant), time.UTC)
	return uc, m
}

func activeUser(batch string) *shared.UserSnapshot {
	return builder.NewUserBuilder().WithBatch(batch).BuildSnapshot()
}

func seatSnapshot(id uuid.UUID) *shared.SeatSnapshot {
	return &shared.SeatSnapshot{ID: id, Number: "S01", Zone: "designated"}
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

// =============================================================================
// Reserve
// =============================================================================

func TestReserve_DesignatedSuccess(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	userID := uuid.New()
	seatID := uuid.New()
	createdID := uuid.New()
	ctx := context.Background()

	m.reads.EXPECT().UserByID(ctx, userID).Return(activeUser("A"), nil)
	m.reads.EXPECT().SeatByID(ctx, seatID).Return(seatSnapshot(seatID), nil)
	m.reads.EXPECT().ConfirmedSeatsByDay(ctx, gomock.Any()).Return(nil, nil)
	m.bookingRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
			assert.Equal(t, booking.SeatTypeDesignated, b.SeatType())
			assert.Equal(t, userID, b.UserID())
			return createdID, nil
		})
	m.notification.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).Return(nil)

	expected := builder.NewBookingBuilder().WithID(createdID).WithUserID(userID).WithSeatID(seatID).BuildView()
	m.queries.EXPECT().GetByIDSystem(ctx, createdID).Return(expected, nil)

	view, err := uc.Reserve(ctx, commands.ReserveBookingRequest{SeatID: seatID, Day: scheduledDay}, userID)

	require.NoError(t, err)
	assert.Equal(t, createdID, view.ID)
	assert.Equal(t, "designated", view.SeatType)
}

func TestReserve_InvalidDayFormat(t *testing.T) {
	uc, _ := newUseCase(t, testNow)

	_, err := uc.Reserve(context.Background(), commands.ReserveBookingRequest{SeatID: uuid.New(), Day: "29-12-2025"}, uuid.New())

	assert.ErrorIs(t, err, commands.ErrInvalidDay)
}

func TestReserve_UserNotFound(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	userID := uuid.New()
	m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(nil, notFoundErr("user not found"))

	_, err := uc.Reserve(context.Background(), commands.ReserveBookingRequest{SeatID: uuid.New(), Day: scheduledDay}, userID)

	assert.ErrorIs(t, err, commands.ErrUserNotFound)
}

func TestReserve_InactiveUser(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	userID := uuid.New()
	inactive := builder.NewUserBuilder().AsInactive().BuildSnapshot()
	m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(inactive, nil)

	_, err := uc.Reserve(context.Background(), commands.ReserveBookingRequest{SeatID: uuid.New(), Day: scheduledDay}, userID)

	assert.ErrorIs(t, err, commands.ErrUserInactive)
}

func TestReserve_SeatNotFound(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	userID := uuid.New()
	seatID := uuid.New()
	m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(activeUser("A"), nil)
	m.reads.EXPECT().SeatByID(gomock.Any(), seatID).Return(nil, notFoundErr("seat not found"))

	_, err := uc.Reserve(context.Background(), commands.ReserveBookingRequest{SeatID: seatID, Day: scheduledDay}, userID)

	assert.ErrorIs(t, err, commands.ErrSeatNotFound)
}

func TestReserve_RuleRejected(t *testing.T) {
	testCases := []struct {
		name         string
		now          string
		day          string
		batch        string
		occupancy    []shared.ConfirmedSeatRow
		expectReason booking.Reason
	}{
		{
			name:         "weekend day",
			now:          testNow,
			day:          "2026-01-03",
			batch:        "A",
			expectReason: booking.ReasonWeekend,
		},
		{
			name:         "beyond the 14 day horizon",
			now:          testNow,
			day:          "2026-01-06",
			batch:        "A",
			expectReason: booking.ReasonOutsideHorizon,
		},
		{
			name:  "scheduled batch at designated capacity",
			now:   testNow,
			day:   scheduledDay,
			batch: "A",
			occupancy: func() []shared.ConfirmedSeatRow {
				rows := make([]shared.ConfirmedSeatRow, 0, 40)
				for range 40 {
					rows = append(rows, shared.ConfirmedSeatRow{
						UserID: uuid.New(), SeatID: uuid.New(), SeatType: "designated", OwnerBatch: "A",
					})
				}
				return rows
			}(),
			expectReason: booking.ReasonBatchCapacityReached,
		},
		{
			name:         "off-schedule same day",
			now:          "2025-12-29T09:00:00Z",
			day:          scheduledDay,
			batch:        "B",
			expectReason: booking.ReasonSameDayFloater,
		},
		{
			name:         "off-schedule more than one day ahead",
			now:          testNow,
			day:          scheduledDay,
			batch:        "B",
			expectReason: booking.ReasonFloaterAdvanceWindow,
		},
		{
			name:         "floater before the 15:00 cutoff",
			now:          "2025-12-28T14:59:59Z",
			day:          scheduledDay,
			batch:        "B",
			expectReason: booking.ReasonFloaterCutoff,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newUseCase(t, tc.now)

			userID := uuid.New()
			seatID := uuid.New()
			m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(activeUser(tc.batch), nil)
			m.reads.EXPECT().SeatByID(gomock.Any(), seatID).Return(seatSnapshot(seatID), nil)
			m.reads.EXPECT().ConfirmedSeatsByDay(gomock.Any(), gomock.Any()).Return(tc.occupancy, nil)

			_, err := uc.Reserve(context.Background(), commands.ReserveBookingRequest{SeatID: seatID, Day: tc.day}, userID)

			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrRuleRejected)

			var ruleErr *commands.RuleViolationError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tc.expectReason, ruleErr.Reason)
		})
	}
}

func TestReserve_FloaterSuccessAfterCutoff(t *testing.T) {
	// 2025-12-28 15:00 UTC: floater bookings for the 29th are unlocked.
	uc, m := newUseCase(t, "2025-12-28T15:00:00Z")

	userID := uuid.New()
	seatID := uuid.New()
	createdID := uuid.New()
	ctx := context.Background()

	m.reads.EXPECT().UserByID(ctx, userID).Return(activeUser("B"), nil)
	m.reads.EXPECT().SeatByID(ctx, seatID).Return(seatSnapshot(seatID), nil)
	m.reads.EXPECT().ConfirmedSeatsByDay(ctx, gomock.Any()).Return(nil, nil)
	m.bookingRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
			assert.Equal(t, booking.SeatTypeFloater, b.SeatType())
			return createdID, nil
		})
	m.notification.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).Return(nil)
	m.queries.EXPECT().GetByIDSystem(ctx, createdID).Return(
		builder.NewBookingBuilder().WithID(createdID).AsFloater().BuildView(), nil)

	view, err := uc.Reserve(ctx, commands.ReserveBookingRequest{SeatID: seatID, Day: scheduledDay}, userID)

	require.NoError(t, err)
	assert.Equal(t, "floater", view.SeatType)
}

func TestReserve_ConflictOnInsert(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	userID := uuid.New()
	seatID := uuid.New()
	ctx := context.Background()

	m.reads.EXPECT().UserByID(ctx, userID).Return(activeUser("A"), nil)
	m.reads.EXPECT().SeatByID(ctx, seatID).Return(seatSnapshot(seatID), nil)
	m.reads.EXPECT().ConfirmedSeatsByDay(ctx, gomock.Any()).Return(nil, nil)
	m.bookingRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(
		uuid.Nil, infra.WrapRepoErr("duplicate booking", errors.New("23505"), infra.KindConflict))

	_, err := uc.Reserve(ctx, commands.ReserveBookingRequest{SeatID: seatID, Day: scheduledDay}, userID)

	assert.ErrorIs(t, err, commands.ErrBookingConflict)
}

// =============================================================================
// Cancel
// =============================================================================

func TestCancel_Success(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	actorID := uuid.New()
	bookingID := uuid.New()
	ctx := context.Background()

	snap := builder.NewBookingBuilder().WithID(bookingID).WithUserID(actorID).BuildSnapshot()
	m.reads.EXPECT().BookingByID(ctx, bookingID).Return(snap, nil)
	m.bookingRepo.EXPECT().UpdateStatusCancelled(ctx, gomock.Any(), bookingID).Return(nil)
	m.notification.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking_cancelled", gomock.Any(), gomock.Any()).Return(nil)

	cancelled := builder.NewBookingBuilder().WithID(bookingID).WithUserID(actorID).AsCancelled().BuildView()
	m.queries.EXPECT().GetByIDSystem(ctx, bookingID).Return(cancelled, nil)

	view, err := uc.Cancel(ctx, bookingID, actorID)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
}

func TestCancel_NotFound(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	bookingID := uuid.New()
	m.reads.EXPECT().BookingByID(gomock.Any(), bookingID).Return(nil, notFoundErr("booking not found"))

	_, err := uc.Cancel(context.Background(), bookingID, uuid.New())

	assert.ErrorIs(t, err, commands.ErrBookingNotFound)
}

func TestCancel_NotOwner(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	bookingID := uuid.New()
	snap := builder.NewBookingBuilder().WithID(bookingID).BuildSnapshot()
	m.reads.EXPECT().BookingByID(gomock.Any(), bookingID).Return(snap, nil)

	_, err := uc.Cancel(context.Background(), bookingID, uuid.New())

	assert.ErrorIs(t, err, commands.ErrNotBookingOwner)
}

func TestCancel_AlreadyCancelledIsNoOp(t *testing.T) {
	uc, m := newUseCase(t, testNow)

	actorID := uuid.New()
	bookingID := uuid.New()
	ctx := context.Background()

	snap := builder.NewBookingBuilder().WithID(bookingID).WithUserID(actorID).AsCancelled().BuildSnapshot()
	m.reads.EXPECT().BookingByID(ctx, bookingID).Return(snap, nil)
	// No UpdateStatusCancelled and no notification job: nothing changed.

	cancelled := builder.NewBookingBuilder().WithID(bookingID).WithUserID(actorID).AsCancelled().BuildView()
	m.queries.EXPECT().GetByIDSystem(ctx, bookingID).Return(cancelled, nil)

	view, err := uc.Cancel(ctx, bookingID, actorID)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
}
