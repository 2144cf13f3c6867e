package api

import (
	"errors"
	"net/http"

	resdto "deskbook/internal/handler/dto/response"
	"deskbook/internal/handler/httperr"
	"deskbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeatHandler struct {
	q queries.SeatQueries
}

func NewSeatHandler(q queries.SeatQueries) *SeatHandler {
	return &SeatHandler{q: q}
}

// @Summary List seats
// @Description List every seat on the floor, ordered by number
// @Tags seats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SeatResponse
// @Failure 401 {object} map[string]string
// @Router /seats [get]
func (h *SeatHandler) List(c *gin.Context) {
	seats, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeatList(seats))
}

// @Summary Get seat
// @Description Get seat by ID
// @Tags seats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seat ID"
// @Success 200 {object} resdto.SeatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seats/{id} [get]
func (h *SeatHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat ID format", nil)
		return
	}

	seat, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrSeatNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Seat not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeatView(seat))
}
