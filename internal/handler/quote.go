package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// QuoteRequestBody is the body of POST /quotes.
// Nights is a pointer so a missing value can be told apart from zero.
type QuoteRequestBody struct {
	StayDates     string                `json:"stay_dates"`
	Nights        *int                  `json:"nights"`
	PackageID     *uuid.UUID            `json:"package_id,omitempty"`
	PackageCode   string                `json:"package_code,omitempty"`
	StaticPackage string                `json:"static_package,omitempty"`
	Funder        string                `json:"funder,omitempty"`
	HasCourse     bool                  `json:"has_course"`
	Care          json.RawMessage       `json:"care,omitempty"`
	CareAnalysis  *domain.CareAnalysis  `json:"care_analysis,omitempty"`
	FormPages     []domain.FormPage     `json:"form_pages,omitempty"`
	Answers       []domain.QAPair       `json:"answers,omitempty"`
	Rooms         []domain.SelectedRoom `json:"rooms,omitempty"`
}

// Day is one stay day in a quote response.
type Day struct {
	Date         openapi_types.Date `json:"date"`
	WeekdayIndex int                `json:"weekday_index"`
	RateType     domain.RateType    `json:"rate_type"`
	IsCheckIn    bool               `json:"is_check_in"`
	IsCheckOut   bool               `json:"is_check_out"`
	IsMiddle     bool               `json:"is_middle"`
}

// DailyCare is the care schedule of one day in a quote response.
type DailyCare struct {
	Date           openapi_types.Date `json:"date"`
	RateType       domain.RateType    `json:"rate_type"`
	IsCheckIn      bool               `json:"is_check_in"`
	IsCheckOut     bool               `json:"is_check_out"`
	IsMiddle       bool               `json:"is_middle"`
	RawCare        domain.CareProfile `json:"raw_care"`
	ApplicableCare domain.CareProfile `json:"applicable_care"`
	DayTotalHours  float64            `json:"day_total_hours"`
}

// Care is the care analysis in a quote response.
type Care struct {
	RequiresCare     bool        `json:"requires_care"`
	TotalHoursPerDay float64     `json:"total_hours_per_day"`
	TotalCareHours   float64     `json:"total_care_hours"`
	DailyCareDetails []DailyCare `json:"daily_care_details"`
	CareVaries       bool        `json:"care_varies"`
}

// QuoteResponse is the body of POST /quotes and GET /bookings/{id}/quote.
type QuoteResponse struct {
	PackageCode string                  `json:"package_code"`
	PackageName string                  `json:"package_name"`
	Days        []Day                   `json:"days"`
	Care        Care                    `json:"care"`
	LineItems   []domain.PricedLineItem `json:"line_items"`
	Summary     domain.CostSummary      `json:"summary"`
}

// CreateQuote handles POST /quotes.
// Use ?format=csv to receive the pricing table as CSV; default is JSON.
func (s *Server) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var body QuoteRequestBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Nights == nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("nights is required"))
		return
	}

	q, err := s.quotes.Quote(r.Context(), requestToQuote(body))
	if err != nil {
		s.writeServiceError(w, r, err, "package not found")
		return
	}
	writeQuote(w, r, q)
}

// GetBookingQuote handles GET /bookings/{id}/quote.
// Use ?format=csv to receive the pricing table as CSV; default is JSON.
func (s *Server) GetBookingQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("id must be a UUID"))
		return
	}

	q, err := s.quotes.QuoteBooking(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "booking not found")
		return
	}
	writeQuote(w, r, q)
}

func writeQuote(w http.ResponseWriter, r *http.Request, q domain.Quote) {
	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, q)
		return
	}
	writeJSON(w, http.StatusOK, quoteToResponse(q))
}

func requestToQuote(b QuoteRequestBody) domain.QuoteRequest {
	return domain.QuoteRequest{
		StayDates:     b.StayDates,
		Nights:        *b.Nights,
		PackageID:     b.PackageID,
		PackageCode:   b.PackageCode,
		StaticPackage: domain.StaticPackageCode(b.StaticPackage),
		Funder:        domain.Funder(b.Funder),
		HasCourse:     b.HasCourse,
		Care:          b.Care,
		CareAnalysis:  b.CareAnalysis,
		FormPages:     b.FormPages,
		Answers:       b.Answers,
		Rooms:         b.Rooms,
	}
}

// quoteToResponse maps a domain.Quote to its wire form. Slices are never
// nil so clients always see arrays.
func quoteToResponse(q domain.Quote) QuoteResponse {
	days := make([]Day, len(q.Days))
	for i, d := range q.Days {
		days[i] = Day{
			Date:         toDate(d.Date),
			WeekdayIndex: d.WeekdayIndex,
			RateType:     d.RateType,
			IsCheckIn:    d.IsCheckIn,
			IsCheckOut:   d.IsCheckOut,
			IsMiddle:     d.IsMiddle,
		}
	}

	details := make([]DailyCare, len(q.Care.DailyCareDetails))
	for i, d := range q.Care.DailyCareDetails {
		details[i] = DailyCare{
			Date:           toDate(d.Date),
			RateType:       d.RateType,
			IsCheckIn:      d.IsCheckIn,
			IsCheckOut:     d.IsCheckOut,
			IsMiddle:       d.IsMiddle,
			RawCare:        d.RawCare,
			ApplicableCare: d.ApplicableCare,
			DayTotalHours:  d.DayTotalHours,
		}
	}

	items := q.LineItems
	if items == nil {
		items = []domain.PricedLineItem{}
	}

	return QuoteResponse{
		PackageCode: q.PackageCode,
		PackageName: q.PackageName,
		Days:        days,
		Care: Care{
			RequiresCare:     q.Care.RequiresCare,
			TotalHoursPerDay: q.Care.TotalHoursPerDay,
			TotalCareHours:   q.Care.TotalCareHours,
			DailyCareDetails: details,
			CareVaries:       q.Care.CareVaries,
		},
		LineItems: items,
		Summary:   q.Summary,
	}
}

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}
