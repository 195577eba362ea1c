// Package domain contains the core data types for the respite booking quote
// service. Pricing, persistence, and HTTP layers all exchange these types.
// Apart from uuid, this package has no external dependencies.
package domain

import "time"

// RateType classifies a calendar day for price selection.
type RateType string

const (
	RateWeekday       RateType = "weekday"
	RateSaturday      RateType = "saturday"
	RateSunday        RateType = "sunday"
	RatePublicHoliday RateType = "public_holiday"
)

// RateTypes lists every rate bucket in table order.
var RateTypes = []RateType{RateWeekday, RateSaturday, RateSunday, RatePublicHoliday}

// StayWindow is the start of a stay plus its night count.
// A stay spans Nights+1 calendar days because the checkout day counts.
type StayWindow struct {
	StartDate time.Time `json:"start_date"`
	Nights    int       `json:"nights"`
}

// DayCount returns the number of calendar days covered, checkout included.
func (w StayWindow) DayCount() int {
	if w.Nights < 0 {
		return 0
	}
	return w.Nights + 1
}

// DayDescriptor describes one calendar day of a stay.
// On a same-day stay (zero nights) IsCheckIn and IsCheckOut are both true.
type DayDescriptor struct {
	Date         time.Time `json:"date"`
	WeekdayIndex int       `json:"weekday_index"` // 0=Sunday..6=Saturday
	RateType     RateType  `json:"rate_type"`
	IsCheckIn    bool      `json:"is_check_in"`
	IsCheckOut   bool      `json:"is_check_out"`
	IsMiddle     bool      `json:"is_middle"`
}
