package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PerformanceScheduled = "scheduled"
	PerformanceCompleted = "completed"
	PerformanceCancelled = "cancelled"
)

type Performance struct {
	Id     uuid.UUID `json:"id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
	Play   *Play     `json:"play,omitempty"`
}

// Bookable reports whether the performance still accepts seat selection.
func (p Performance) Bookable() bool {
	return p.Status == PerformanceScheduled
}
