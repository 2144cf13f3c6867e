package booking

// Status of a booking. Cancelled is terminal; records are never deleted.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// SeatType is the class the rule engine assigned when the booking was
// created. It is frozen for the lifetime of the record and is independent of
// the seat's physical zone.
type SeatType string

const (
	SeatTypeDesignated SeatType = "designated"
	SeatTypeFloater    SeatType = "floater"
)

func (t SeatType) String() string {
	return string(t)
}

func (t SeatType) IsValid() bool {
	switch t {
	case SeatTypeDesignated, SeatTypeFloater:
		return true
	default:
		return false
	}
}

// Reason enumerates every way the rule engine can deny a request.
type Reason string

const (
	ReasonWeekend              Reason = "weekend_not_allowed"
	ReasonOutsideHorizon       Reason = "outside_booking_horizon"
	ReasonBatchCapacityReached Reason = "batch_capacity_reached"
	ReasonSameDayFloater       Reason = "same_day_floater_blocked"
	ReasonFloaterAdvanceWindow Reason = "floater_advance_window_violated"
	ReasonFloaterCutoff        Reason = "floater_cutoff_not_reached"
	ReasonFloaterPoolFull      Reason = "floater_pool_full"
)

var reasonMessages = map[Reason]string{
	ReasonWeekend:              "booking is not allowed on weekends",
	ReasonOutsideHorizon:       "booking is only allowed within 14 days from today",
	ReasonBatchCapacityReached: "batch capacity reached: the scheduled batch has already booked all 40 designated seats",
	ReasonSameDayFloater:       "floater seats cannot be booked for the same day; try booking for tomorrow instead",
	ReasonFloaterAdvanceWindow: "floater seats can only be booked exactly one day in advance",
	ReasonFloaterCutoff:        "floater bookings for tomorrow unlock at 15:00",
	ReasonFloaterPoolFull:      "the dynamic floater pool is full for this day",
}

// Message returns the human-readable denial text for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// Decision is the outcome of a rule evaluation. When Allowed is true,
// SeatType carries the class assigned to the booking; otherwise Reason says
// which check failed first.
type Decision struct {
	Allowed  bool
	Reason   Reason
	SeatType SeatType
}

func allow(t SeatType) Decision {
	return Decision{Allowed: true, SeatType: t}
}

func deny(r Reason) Decision {
	return Decision{Allowed: false, Reason: r}
}
