package pricing

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// DecodeCareAnswer normalizes the many shapes a care answer arrives in:
// a JSON string or bytes (possibly JSON-encoded twice), a decoded JSON
// value, or the typed answer itself. ok is false when nothing decodes.
func DecodeCareAnswer(raw any) (domain.RawCareAnswer, bool) {
	switch v := raw.(type) {
	case nil:
		return domain.RawCareAnswer{}, false
	case domain.RawCareAnswer:
		return v, true
	case *domain.RawCareAnswer:
		if v == nil {
			return domain.RawCareAnswer{}, false
		}
		return *v, true
	case []domain.RawCareEntry:
		return domain.RawCareAnswer{CareData: v}, v != nil
	case string:
		return decodeCareJSON([]byte(v))
	case []byte:
		return decodeCareJSON(v)
	case json.RawMessage:
		return decodeCareJSON(v)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return domain.RawCareAnswer{}, false
	}
	return decodeCareJSON(b)
}

func decodeCareJSON(b []byte) (domain.RawCareAnswer, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return domain.RawCareAnswer{}, false
	}
	if b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return domain.RawCareAnswer{}, false
		}
		b = bytes.TrimSpace([]byte(inner))
		if len(b) == 0 || b[0] == '"' {
			return domain.RawCareAnswer{}, false
		}
	}
	var answer domain.RawCareAnswer
	if err := json.Unmarshal(b, &answer); err != nil {
		return domain.RawCareAnswer{}, false
	}
	return answer, true
}

// hasCareData reports whether an answer carries anything to normalize.
func hasCareData(a domain.RawCareAnswer) bool {
	return len(a.CareData) > 0 || len(a.DefaultValues) > 0
}

// carersRequired reads the carers field of a care answer.
func carersRequired(carers domain.FlexString) bool {
	s := strings.ToLower(strings.TrimSpace(string(carers)))
	switch s {
	case "", "no", "none", "false", "not required", "no carers required":
		return false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n > 0
	}
	return true
}

func valueHours(v domain.RawCareValues) float64 {
	if !carersRequired(v.Carers) {
		return 0
	}
	if v.Time != "" {
		return ParseDuration(string(v.Time))
	}
	return ParseDuration(string(v.Duration))
}

func validPeriod(p domain.CarePeriod) bool {
	return p == domain.PeriodMorning || p == domain.PeriodAfternoon || p == domain.PeriodEvening
}

// parseCareEntries turns raw entries into CarePeriodEntry values, dropping
// unparseable dates, unknown periods, entries without carers, and zero hours.
func parseCareEntries(raw []domain.RawCareEntry) []domain.CarePeriodEntry {
	entries := make([]domain.CarePeriodEntry, 0, len(raw))
	for _, r := range raw {
		period := domain.CarePeriod(strings.ToLower(strings.TrimSpace(string(r.Care))))
		if !validPeriod(period) {
			continue
		}
		date, ok := parseDate(r.Date)
		if !ok {
			continue
		}
		entry := domain.CarePeriodEntry{
			Date:           date,
			Period:         period,
			CarersRequired: carersRequired(r.Values.Carers),
			Hours:          valueHours(r.Values),
		}
		if !entry.CarersRequired || entry.Hours <= 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// defaultProfile prefers the explicit defaults block and otherwise takes the
// first entry seen for each period.
func defaultProfile(answer domain.RawCareAnswer, entries []domain.CarePeriodEntry) domain.CareProfile {
	var explicit domain.CareProfile
	for _, period := range domain.CarePeriods {
		if v, ok := answer.DefaultValues[period]; ok {
			explicit = explicit.With(period, valueHours(v))
		}
	}
	if !explicit.IsZero() {
		return explicit
	}

	var derived domain.CareProfile
	seen := make(map[domain.CarePeriod]bool, len(domain.CarePeriods))
	for _, e := range entries {
		if seen[e.Period] {
			continue
		}
		seen[e.Period] = true
		derived = derived.With(e.Period, e.Hours)
	}
	return derived
}

// applicableCare applies the arrival/departure rule: no morning or
// afternoon care on check-in, no afternoon or evening care on check-out.
// A same-day stay gets both clippings.
func applicableCare(day domain.DayDescriptor, raw domain.CareProfile) domain.CareProfile {
	care := raw
	if day.IsCheckIn {
		care.Morning = 0
		care.Afternoon = 0
	}
	if day.IsCheckOut {
		care.Afternoon = 0
		care.Evening = 0
	}
	return care
}

func emptyAnalysis(careVaries bool) domain.CareAnalysis {
	return domain.CareAnalysis{
		DailyCareDetails: []domain.DailyCareDetail{},
		CareVaries:       careVaries,
	}
}

// NormalizeCare builds the care analysis for a stay from a raw care answer.
// Undecodable or empty answers produce an analysis with RequiresCare false.
func NormalizeCare(raw any, stayDates string, nights int, holidays HolidaySet) domain.CareAnalysis {
	answer, ok := DecodeCareAnswer(raw)
	if !ok {
		return emptyAnalysis(false)
	}
	return normalizeAnswer(answer, GenerateStayDates(stayDates, nights, holidays))
}

func normalizeAnswer(answer domain.RawCareAnswer, days []domain.DayDescriptor) domain.CareAnalysis {
	entries := parseCareEntries(answer.CareData)
	defaults := defaultProfile(answer, entries)
	if len(entries) == 0 && defaults.IsZero() {
		return emptyAnalysis(answer.CareVaries)
	}

	byDate := make(map[string]domain.CareProfile, len(entries))
	for _, e := range entries {
		key := dateKey(e.Date)
		byDate[key] = byDate[key].With(e.Period, e.Hours)
	}

	analysis := domain.CareAnalysis{
		TotalHoursPerDay: defaults.Total(),
		DailyCareDetails: make([]domain.DailyCareDetail, 0, len(days)),
		CareVaries:       answer.CareVaries,
	}
	for _, day := range days {
		raw, ok := byDate[dateKey(day.Date)]
		if !ok {
			raw = defaults
		}
		care := applicableCare(day, raw)
		detail := domain.DailyCareDetail{
			Date:           day.Date,
			RateType:       day.RateType,
			IsCheckIn:      day.IsCheckIn,
			IsCheckOut:     day.IsCheckOut,
			IsMiddle:       day.IsMiddle,
			RawCare:        raw,
			ApplicableCare: care,
			DayTotalHours:  care.Total(),
		}
		analysis.TotalCareHours += detail.DayTotalHours
		analysis.DailyCareDetails = append(analysis.DailyCareDetails, detail)
	}
	analysis.RequiresCare = analysis.TotalCareHours > 0 || analysis.TotalHoursPerDay > 0
	return analysis
}
