package domain

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is a public holiday observed in a region.
// Date carries only the civil date; the time part is always midnight UTC.
type Holiday struct {
	ID     uuid.UUID `json:"id"`
	Region string    `json:"region"`
	Date   time.Time `json:"date"`
	Name   string    `json:"name"`
}
