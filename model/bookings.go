package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	Id            uuid.UUID         `json:"id"`
	UserId        uuid.UUID         `json:"user_id"`
	PerformanceId uuid.UUID         `json:"performance_id"`
	TotalPrice    int               `json:"total_price"`
	Status        string            `json:"status"`
	ExpiresAt     time.Time         `json:"expires_at"`
	CreatedAt     time.Time         `json:"created_at"`
	Performance   *Performance      `json:"performance,omitempty"`
	Seats         []PerformanceSeat `json:"seats,omitempty"`
}

// Cancellable reports whether the booking still accepts cancellation. Only
// pending bookings can be cancelled server-side.
func (b Booking) Cancellable() bool {
	return b.Status == BookingPending
}
