package pricing

import (
	"strings"
	"time"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

const dateKeyLayout = "2006-01-02"

// MaxStayNights is the longest stay the calendar will enumerate. Longer
// stays are treated like unparseable ones.
const MaxStayNights = 366

// stayDateLayouts are tried in order. Form dates are day/month/year.
var stayDateLayouts = []string{"2/1/2006", "2006-01-02", "2-1-2006"}

// HolidaySet is a set of civil dates that are public holidays.
// A nil set is valid and contains nothing.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a HolidaySet from holiday records.
func NewHolidaySet(holidays []domain.Holiday) HolidaySet {
	s := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		s[dateKey(h.Date)] = struct{}{}
	}
	return s
}

// HolidaySetFromDates builds a HolidaySet from bare dates.
func HolidaySetFromDates(dates ...time.Time) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s[dateKey(d)] = struct{}{}
	}
	return s
}

// Contains reports whether date falls on a holiday.
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[dateKey(date)]
	return ok
}

func dateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ClassifyDay returns the rate bucket for date. A holiday wins over the
// weekend, so a holiday Saturday is public_holiday.
func ClassifyDay(date time.Time, holidays HolidaySet) domain.RateType {
	if holidays.Contains(date) {
		return domain.RatePublicHoliday
	}
	switch date.Weekday() {
	case time.Sunday:
		return domain.RateSunday
	case time.Saturday:
		return domain.RateSaturday
	}
	return domain.RateWeekday
}

// ParseStayStart extracts the start date from a "start - end" stay string.
// Only the start is read; the night count decides the stay length.
func ParseStayStart(stayDates string) (time.Time, bool) {
	start, _, found := strings.Cut(stayDates, " - ")
	if !found && strings.Contains(stayDates, "/") {
		start, _, _ = strings.Cut(stayDates, "-")
	}
	return parseDate(start)
}

// StayRange returns the first and last calendar day of a stay.
func StayRange(stayDates string, nights int) (from, to time.Time, ok bool) {
	if nights < 0 || nights > MaxStayNights {
		return time.Time{}, time.Time{}, false
	}
	from, ok = ParseStayStart(stayDates)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, from.AddDate(0, 0, nights), true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stayDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GenerateStayDates lists the nights+1 days of a stay starting at the start
// of stayDates. Day 0 is check-in and the last day is check-out; with zero
// nights the single day is both. An unparseable start or a night count
// outside 0..MaxStayNights yields an empty slice.
func GenerateStayDates(stayDates string, nights int, holidays HolidaySet) []domain.DayDescriptor {
	start, ok := ParseStayStart(stayDates)
	if !ok || nights < 0 || nights > MaxStayNights {
		return []domain.DayDescriptor{}
	}

	days := make([]domain.DayDescriptor, 0, nights+1)
	for i := 0; i <= nights; i++ {
		date := start.AddDate(0, 0, i)
		checkIn := i == 0
		checkOut := i == nights
		days = append(days, domain.DayDescriptor{
			Date:         date,
			WeekdayIndex: int(date.Weekday()),
			RateType:     ClassifyDay(date, holidays),
			IsCheckIn:    checkIn,
			IsCheckOut:   checkOut,
			IsMiddle:     !checkIn && !checkOut,
		})
	}
	return days
}
