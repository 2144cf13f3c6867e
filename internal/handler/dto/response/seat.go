package response

import (
	"time"

	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Zone      string    `json:"zone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromSeatView(rm *queries.SeatView) *SeatResponse {
	resp := &SeatResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromSeatList(rms []*queries.SeatView) []*SeatResponse {
	out := make([]*SeatResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromSeatView(rm))
	}
	return out
}
