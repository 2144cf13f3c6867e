package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SeatID uuid.UUID `json:"seat_id" binding:"required"`
	// Day is the requested calendar date in YYYY-MM-DD form.
	Day string `json:"day" binding:"required"`
}

func (r CreateBookingRequest) GetDay() string {
	return strings.TrimSpace(r.Day)
}
