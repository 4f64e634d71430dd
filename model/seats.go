package model

import "github.com/google/uuid"

const (
	SeatAvailable = "available"
	SeatReserved  = "reserved"
	SeatSold      = "sold"
)

type Seat struct {
	Id       uuid.UUID `json:"id"`
	Row      int       `json:"row"`
	Number   int       `json:"number"`
	Category string    `json:"category"`
}

// PerformanceSeat is one seat's bookable status and price for a single
// performance. The status is authoritative only as of fetch time.
type PerformanceSeat struct {
	Id            uuid.UUID `json:"id"`
	PerformanceId uuid.UUID `json:"performance_id"`
	SeatId        uuid.UUID `json:"seat_id"`
	Price         int       `json:"price"`
	Status        string    `json:"status"`
	Seat          *Seat     `json:"seat,omitempty"`
}

func (s PerformanceSeat) Available() bool {
	return s.Status == SeatAvailable
}
