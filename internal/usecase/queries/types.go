package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Read models (DTO for read side)
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Batch     string    `json:"batch"`
	SquadName string    `json:"squad_name"`
	IsActive  bool      `json:"is_active"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	SeatID     uuid.UUID `json:"seat_id"`
	SeatNumber string    `json:"seat_number"`
	Day        time.Time `json:"day"`
	SeatType   string    `json:"seat_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seat_id"`
	SeatNumber string    `json:"seat_number"`
	Day        time.Time `json:"day"`
	SeatType   string    `json:"seat_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type SeatView struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Zone      string    `json:"zone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DayOccupancyItem struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	SquadName  string    `json:"squad_name"`
	OwnerBatch string    `json:"owner_batch"`
	SeatID     uuid.UUID `json:"seat_id"`
	SeatNumber string    `json:"seat_number"`
	SeatType   string    `json:"seat_type"`
}

type DayOccupancyView struct {
	Day              time.Time          `json:"day"`
	ScheduledBatch   string             `json:"scheduled_batch,omitempty"`
	DesignatedTaken  int                `json:"designated_taken"`
	FloaterTaken     int                `json:"floater_taken"`
	FloaterAvailable int                `json:"floater_available"`
	Items            []DayOccupancyItem `json:"items"`
}

type DailyUtilization struct {
	Day        time.Time `json:"day"`
	Designated int       `json:"designated"`
	Floater    int       `json:"floater"`
	Total      int       `json:"total"`
}

type UtilizationReport struct {
	From  time.Time          `json:"from"`
	To    time.Time          `json:"to"`
	Days  []DailyUtilization `json:"days"`
	Total int                `json:"total"`
	// TotalSlots is seats x days over the range; UtilizationPct is
	// Total/TotalSlots as a percentage rounded to two decimals.
	TotalSlots     int     `json:"total_slots"`
	UtilizationPct float64 `json:"utilization_pct"`
}
