//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/domain/user"
	"deskbook/internal/handler/dto/response"
	"deskbook/tests/common/authtest"
	"deskbook/tests/common/dbtest"
	"deskbook/tests/common/httptest"
	"deskbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// The suite runs against the real clock, so target days are derived from
// time.Now instead of fixed dates. nextWeekday returns the first weekday at
// least minDaysAhead days out, as a UTC midnight day key.
func nextWeekday(minDaysAhead int) time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, minDaysAhead)
	for booking.IsWeekend(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func nextSaturday() time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func dayParam(day time.Time) string {
	return day.Format("2006-01-02")
}

func (s *BookingSuite) token(userID uuid.UUID, role user.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), userID, role)
}

// scheduledUser creates an active employee whose batch is the one scheduled
// on the given day, so a designated reservation for that day is always legal.
func (s *BookingSuite) scheduledUser(email string, day time.Time) (uuid.UUID, user.Batch) {
	t := s.T()
	batch, ok := booking.ScheduledBatchFor(day)
	require.True(t, ok, "target day must be a weekday")
	id := dbtest.CreateTestUser(t, s.DB, email, "employee", batch.String())
	return id, batch
}

func (s *BookingSuite) reserve(token string, seatID uuid.UUID, day time.Time) *response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
		map[string]any{"seat_id": seatID, "day": dayParam(day)}, token)

	var created response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

func (s *BookingSuite) TestReserve() {
	s.Run("designated seat reserve and fetch", func() {
		t := s.T()
		day := nextWeekday(2)
		userID, _ := s.scheduledUser("alice@example.com", day)
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		token := s.token(userID, user.RoleEmployee)

		created := s.reserve(token, seatID, day)
		assert.Equal(t, "designated", created.SeatType)
		assert.Equal(t, "confirmed", created.Status)
		assert.Equal(t, dayParam(day), created.Day)
		assert.Equal(t, "S01", created.SeatNumber)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, token)

		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		if diff := cmp.Diff(*created, fetched, cmpopts.IgnoreFields(response.BookingResponse{}, "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("booking mismatch (-created +fetched):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, token)

		var mine []response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, created.ID, mine[0].ID)
	})

	s.Run("taken seat and double booking both conflict", func() {
		t := s.T()
		day := nextWeekday(2)
		aliceID, batch := s.scheduledUser("alice@example.com", day)
		bobID := dbtest.CreateTestUser(t, s.DB, "bob@example.com", "employee", batch.String())
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		otherSeatID := dbtest.SeatIDByNumber(t, s.DB, "S02")

		s.reserve(s.token(aliceID, user.RoleEmployee), seatID, day)

		// 別ユーザーが同じ席を取ろうとすると競合
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": seatID, "day": dayParam(day)}, s.token(bobID, user.RoleEmployee))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Seat or day already booked")

		// 同一ユーザーは1日1予約まで
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": otherSeatID, "day": dayParam(day)}, s.token(aliceID, user.RoleEmployee))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Seat or day already booked")
	})

	s.Run("concurrent reserves for one seat commit exactly once", func() {
		t := s.T()
		day := nextWeekday(2)
		aliceID, batch := s.scheduledUser("alice@example.com", day)
		bobID := dbtest.CreateTestUser(t, s.DB, "bob@example.com", "employee", batch.String())
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		tokens := []string{s.token(aliceID, user.RoleEmployee), s.token(bobID, user.RoleEmployee)}

		codes := make(chan int, len(tokens))
		var wg sync.WaitGroup
		for _, token := range tokens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
					map[string]any{"seat_id": seatID, "day": dayParam(day)}, token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got)
	})

	s.Run("weekend day is rejected", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "carol@example.com", "employee", "A")
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": seatID, "day": dayParam(nextSaturday())}, s.token(userID, user.RoleEmployee))

		httptest.AssertRuleRejection(t, w, "weekend_not_allowed")
	})

	s.Run("day beyond the booking horizon is rejected", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "carol@example.com", "employee", "A")
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": seatID, "day": dayParam(nextWeekday(20))}, s.token(userID, user.RoleEmployee))

		httptest.AssertRuleRejection(t, w, "outside_booking_horizon")
	})

	s.Run("off-batch user too far ahead for a floater is rejected", func() {
		t := s.T()
		day := nextWeekday(3)
		batch, ok := booking.ScheduledBatchFor(day)
		require.True(t, ok)
		userID := dbtest.CreateTestUser(t, s.DB, "carol@example.com", "employee", batch.Other().String())
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": seatID, "day": dayParam(day)}, s.token(userID, user.RoleEmployee))

		httptest.AssertRuleRejection(t, w, "floater_advance_window_violated")
	})

	s.Run("unknown seat returns not found", func() {
		t := s.T()
		day := nextWeekday(2)
		userID, _ := s.scheduledUser("alice@example.com", day)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{"seat_id": uuid.New(), "day": dayParam(day)}, s.token(userID, user.RoleEmployee))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Seat not found")
	})
}

func (s *BookingSuite) TestCancel() {
	s.Run("cancel frees the slot and is idempotent", func() {
		t := s.T()
		day := nextWeekday(2)
		aliceID, batch := s.scheduledUser("alice@example.com", day)
		bobID := dbtest.CreateTestUser(t, s.DB, "bob@example.com", "employee", batch.String())
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		aliceToken := s.token(aliceID, user.RoleEmployee)

		created := s.reserve(aliceToken, seatID, day)

		// 他人の予約はキャンセル不可
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil,
			s.token(bobID, user.RoleEmployee))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Booking belongs to another user")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil, aliceToken)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)

		// 再キャンセルは冪等
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil, aliceToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)

		// キャンセル後は同じ席・同じ日を別ユーザーが予約できる
		rebooked := s.reserve(s.token(bobID, user.RoleEmployee), seatID, day)
		assert.Equal(t, "confirmed", rebooked.Status)

		// 自分の一覧からは消える
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, aliceToken)
		var mine []response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		assert.Empty(t, mine)
	})

	s.Run("cancelling a missing booking returns not found", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "employee", "A")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+uuid.NewString(), nil,
			s.token(userID, user.RoleEmployee))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingSuite) TestDayOccupancy() {
	s.Run("lists confirmed bookings with capacity counters", func() {
		t := s.T()
		day := nextWeekday(2)
		userID, batch := s.scheduledUser("alice@example.com", day)
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		token := s.token(userID, user.RoleEmployee)

		s.reserve(token, seatID, day)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/days/%s/bookings", dayParam(day)), nil, token)

		var occupancy response.DayOccupancyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &occupancy)
		assert.Equal(t, dayParam(day), occupancy.Day)
		assert.Equal(t, batch.String(), occupancy.ScheduledBatch)
		assert.Equal(t, 1, occupancy.DesignatedTaken)
		assert.Equal(t, 0, occupancy.FloaterTaken)
		require.Len(t, occupancy.Items, 1)
		assert.Equal(t, "S01", occupancy.Items[0].SeatNumber)
		assert.Equal(t, "alice@example.com", occupancy.Items[0].UserEmail)
	})

	s.Run("cancelled bookings are excluded", func() {
		t := s.T()
		day := nextWeekday(2)
		userID, _ := s.scheduledUser("alice@example.com", day)
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")
		token := s.token(userID, user.RoleEmployee)

		created := s.reserve(token, seatID, day)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/days/%s/bookings", dayParam(day)), nil, token)

		var occupancy response.DayOccupancyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &occupancy)
		assert.Zero(t, occupancy.DesignatedTaken)
		assert.Empty(t, occupancy.Items)
	})
}

func (s *BookingSuite) TestUtilizationReport() {
	s.Run("report is admin only", func() {
		t := s.T()
		day := nextWeekday(2)
		userID, _ := s.scheduledUser("alice@example.com", day)
		adminID := dbtest.CreateTestUser(t, s.DB, "boss@example.com", "admin", "A")
		seatID := dbtest.SeatIDByNumber(t, s.DB, "S01")

		s.reserve(s.token(userID, user.RoleEmployee), seatID, day)

		reportPath := fmt.Sprintf("/api/reports/utilization?from=%s&to=%s", dayParam(day), dayParam(day))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reportPath, nil, s.token(userID, user.RoleEmployee))
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reportPath, nil, s.token(adminID, user.RoleAdmin))

		var report response.UtilizationReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		assert.Equal(t, 1, report.Total)
		// 50席 x 1日
		assert.Equal(t, 50, report.TotalSlots)
		assert.InDelta(t, 2.0, report.UtilizationPct, 0.001)
		require.Len(t, report.Days, 1)
		assert.Equal(t, 1, report.Days[0].Designated)
	})
}

func (s *BookingSuite) TestAuthentication() {
	s.Run("requests without a token are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("expired tokens are rejected", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "employee", "A")
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, userID, user.RoleEmployee)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
