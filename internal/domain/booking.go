package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Booking is a stored guest booking request.
// CareAnswer is the raw care question answer as submitted; CareSummary is
// the analysis saved alongside it when the guest last reviewed the summary.
type Booking struct {
	ID          uuid.UUID       `json:"id"`
	GuestName   string          `json:"guest_name"`
	StayDates   string          `json:"stay_dates"`
	Nights      int             `json:"nights"`
	PackageID   uuid.UUID       `json:"package_id"`
	Funder      Funder          `json:"funder"`
	HasCourse   bool            `json:"has_course"`
	CareAnswer  json.RawMessage `json:"care_answer,omitempty"`
	CareSummary *CareAnalysis   `json:"care_summary,omitempty"`
	Rooms       []SelectedRoom  `json:"rooms"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookingAnswer is one persisted question/answer pair of a booking.
type BookingAnswer struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	QuestionKey string    `json:"question_key"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
}
