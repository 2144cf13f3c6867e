package queries

import (
	"context"
	"math"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/domain/user"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/dateutil"
	"deskbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrInvalidReportRange = errs.New("report range start must not be after end")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips actor scoping; commands use it for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	DayOccupancy(ctx context.Context, day time.Time) (*DayOccupancyView, error)
	Utilization(ctx context.Context, from, to time.Time) (*UtilizationReport, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindConfirmedByDay(ctx context.Context, day time.Time) ([]*DayOccupancyItem, error)
	CountConfirmedByDayRange(ctx context.Context, from, to time.Time) ([]*DailyUtilization, error)
	CountSeats(ctx context.Context) (int, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, _ uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) DayOccupancy(ctx context.Context, day time.Time) (*DayOccupancyView, error) {
	day = dateutil.DayKeyOf(day)

	items, err := q.repo.FindConfirmedByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	rows := make([]booking.ConfirmedBooking, 0, len(items))
	for _, item := range items {
		rows = append(rows, booking.ConfirmedBooking{
			UserID:     item.UserID.String(),
			SeatID:     item.SeatID.String(),
			SeatType:   booking.SeatType(item.SeatType),
			OwnerBatch: user.Batch(item.OwnerBatch),
		})
	}
	snap := booking.BuildSnapshot(day, rows)

	view := &DayOccupancyView{
		Day:              day,
		DesignatedTaken:  snap.ActiveDesignated,
		FloaterTaken:     snap.Floater,
		FloaterAvailable: booking.FloaterAvailable(snap),
		Items:            make([]DayOccupancyItem, 0, len(items)),
	}
	if scheduled, ok := booking.ScheduledBatchFor(day); ok {
		view.ScheduledBatch = scheduled.String()
	}
	for _, item := range items {
		view.Items = append(view.Items, *item)
	}
	return view, nil
}

func (q *bookingQueriesImpl) Utilization(ctx context.Context, from, to time.Time) (*UtilizationReport, error) {
	from = dateutil.DayKeyOf(from)
	to = dateutil.DayKeyOf(to)
	if from.After(to) {
		return nil, ErrInvalidReportRange
	}

	days, err := q.repo.CountConfirmedByDayRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	seatCount, err := q.repo.CountSeats(ctx)
	if err != nil {
		return nil, err
	}

	report := &UtilizationReport{
		From: from,
		To:   to,
		Days: make([]DailyUtilization, 0, len(days)),
	}
	for _, d := range days {
		report.Days = append(report.Days, *d)
		report.Total += d.Total
	}

	dayCount := int(to.Sub(from).Hours()/24) + 1
	report.TotalSlots = seatCount * dayCount
	if report.TotalSlots > 0 {
		report.UtilizationPct = math.Round(float64(report.Total)/float64(report.TotalSlots)*10000) / 100
	}
	return report, nil
}
