package api

import (
	"errors"
	"net/http"

	reqdto "deskbook/internal/handler/dto/request"
	resdto "deskbook/internal/handler/dto/response"
	"deskbook/internal/handler/httperr"
	"deskbook/internal/handler/middleware"
	"deskbook/internal/pkg/dateutil"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a seat for a calendar day under the rotating batch policy
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Reserve(c.Request.Context(), commands.ReserveBookingRequest{
		SeatID: req.SeatID,
		Day:    req.GetDay(),
	}, userID)
	if err != nil {
		h.abortReserveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) abortReserveError(c *gin.Context, err error) {
	var ruleErr *commands.RuleViolationError

	switch {
	case errors.Is(err, commands.ErrInvalidDay):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Day must be a YYYY-MM-DD calendar date", nil)
	case errors.Is(err, commands.ErrSeatNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Seat not found", nil)
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "User account is inactive", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Seat or day already booked", nil)
	case errors.As(err, &ruleErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, ruleErr.Reason.Message(), gin.H{
			"reason": string(ruleErr.Reason),
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	actorID, _ := middleware.GetUserID(c)
	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List every booking of the current user, newest day first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		response = append(response, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel an own booking; cancelling twice is a no-op
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another user", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Day occupancy
// @Description List confirmed bookings and remaining capacity for a day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param day path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayOccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /days/{day}/bookings [get]
func (h *BookingHandler) DayOccupancy(c *gin.Context) {
	day, err := dateutil.ParseDay(c.Param("day"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Day must be a YYYY-MM-DD calendar date", nil)
		return
	}

	view, err := h.q.DayOccupancy(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayOccupancyView(view))
}

// @Summary Utilization report
// @Description Per-day booking counts over a date range (admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.UtilizationReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/utilization [get]
func (h *BookingHandler) Utilization(c *gin.Context) {
	from, err := dateutil.ParseDay(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from must be a YYYY-MM-DD calendar date", nil)
		return
	}
	to, err := dateutil.ParseDay(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "to must be a YYYY-MM-DD calendar date", nil)
		return
	}

	report, err := h.q.Utilization(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must not be after to", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUtilizationReport(report))
}
