package response

import (
	"time"

	"deskbook/internal/pkg/dateutil"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	SeatID     uuid.UUID `json:"seatId"`
	SeatNumber string    `json:"seatNumber"`
	Day        string    `json:"day"`
	SeatType   string    `json:"seatType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seatId"`
	SeatNumber string    `json:"seatNumber"`
	Day        string    `json:"day"`
	SeatType   string    `json:"seatType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DayOccupancyItemResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	UserID     uuid.UUID `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	SquadName  string    `json:"squadName"`
	OwnerBatch string    `json:"ownerBatch"`
	SeatID     uuid.UUID `json:"seatId"`
	SeatNumber string    `json:"seatNumber"`
	SeatType   string    `json:"seatType"`
}

type DayOccupancyResponse struct {
	Day              string                     `json:"day"`
	ScheduledBatch   string                     `json:"scheduledBatch,omitempty"`
	DesignatedTaken  int                        `json:"designatedTaken"`
	FloaterTaken     int                        `json:"floaterTaken"`
	FloaterAvailable int                        `json:"floaterAvailable"`
	Items            []DayOccupancyItemResponse `json:"items"`
}

type DailyUtilizationResponse struct {
	Day        string `json:"day"`
	Designated int    `json:"designated"`
	Floater    int    `json:"floater"`
	Total      int    `json:"total"`
}

type UtilizationReportResponse struct {
	From           string                     `json:"from"`
	To             string                     `json:"to"`
	Days           []DailyUtilizationResponse `json:"days"`
	Total          int                        `json:"total"`
	TotalSlots     int                        `json:"totalSlots"`
	UtilizationPct float64                    `json:"utilizationPct"`
}

// Day fields switch from time.Time to YYYY-MM-DD strings on the way out;
// copier fills the rest.
func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, rm)
	resp.Day = dateutil.Format(rm.Day)
	return resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, rm)
	resp.Day = dateutil.Format(rm.Day)
	return resp
}

func FromDayOccupancyView(rm *queries.DayOccupancyView) *DayOccupancyResponse {
	resp := &DayOccupancyResponse{
		Day:              dateutil.Format(rm.Day),
		ScheduledBatch:   rm.ScheduledBatch,
		DesignatedTaken:  rm.DesignatedTaken,
		FloaterTaken:     rm.FloaterTaken,
		FloaterAvailable: rm.FloaterAvailable,
		Items:            make([]DayOccupancyItemResponse, 0, len(rm.Items)),
	}
	for i := range rm.Items {
		var item DayOccupancyItemResponse
		_ = copier.Copy(&item, &rm.Items[i])
		resp.Items = append(resp.Items, item)
	}
	return resp
}

func FromUtilizationReport(rm *queries.UtilizationReport) *UtilizationReportResponse {
	resp := &UtilizationReportResponse{
		From:           dateutil.Format(rm.From),
		To:             dateutil.Format(rm.To),
		Days:           make([]DailyUtilizationResponse, 0, len(rm.Days)),
		Total:          rm.Total,
		TotalSlots:     rm.TotalSlots,
		UtilizationPct: rm.UtilizationPct,
	}
	for _, d := range rm.Days {
		resp.Days = append(resp.Days, DailyUtilizationResponse{
			Day:        dateutil.Format(d.Day),
			Designated: d.Designated,
			Floater:    d.Floater,
			Total:      d.Total,
		})
	}
	return resp
}
