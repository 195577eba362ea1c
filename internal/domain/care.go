package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// CareQuestionKey identifies the care-schedule question in form pages and
// persisted question/answer pairs.
const CareQuestionKey = "when-do-you-require-care"

// CarePeriod is a coarse time-of-day bucket for personal care.
type CarePeriod string

const (
	PeriodMorning   CarePeriod = "morning"
	PeriodAfternoon CarePeriod = "afternoon"
	PeriodEvening   CarePeriod = "evening"
)

// CarePeriods lists the periods in day order.
var CarePeriods = []CarePeriod{PeriodMorning, PeriodAfternoon, PeriodEvening}

// CarePeriodEntry is one parsed care request for a date and period.
type CarePeriodEntry struct {
	Date           time.Time
	Period         CarePeriod
	Hours          float64
	CarersRequired bool
}

// CareProfile holds hours per care period.
type CareProfile struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
}

// Total returns the sum of the three periods.
func (p CareProfile) Total() float64 {
	return p.Morning + p.Afternoon + p.Evening
}

// Hours returns the hours for a single period, or 0 for an unknown period.
func (p CareProfile) Hours(period CarePeriod) float64 {
	switch period {
	case PeriodMorning:
		return p.Morning
	case PeriodAfternoon:
		return p.Afternoon
	case PeriodEvening:
		return p.Evening
	}
	return 0
}

// With returns a copy of p with period set to hours.
func (p CareProfile) With(period CarePeriod, hours float64) CareProfile {
	switch period {
	case PeriodMorning:
		p.Morning = hours
	case PeriodAfternoon:
		p.Afternoon = hours
	case PeriodEvening:
		p.Evening = hours
	}
	return p
}

// IsZero reports whether every period is zero.
func (p CareProfile) IsZero() bool {
	return p.Morning == 0 && p.Afternoon == 0 && p.Evening == 0
}

// DailyCareDetail is the care schedule for one stay day.
// ApplicableCare is RawCare after the arrival/departure clipping rule.
type DailyCareDetail struct {
	Date           time.Time   `json:"date"`
	RateType       RateType    `json:"rate_type"`
	IsCheckIn      bool        `json:"is_check_in"`
	IsCheckOut     bool        `json:"is_check_out"`
	IsMiddle       bool        `json:"is_middle"`
	RawCare        CareProfile `json:"raw_care"`
	ApplicableCare CareProfile `json:"applicable_care"`
	DayTotalHours  float64     `json:"day_total_hours"`
}

// CareAnalysis is the normalized care schedule for a stay.
// TotalHoursPerDay is the nominal figure from the default profile and is
// not TotalCareHours divided by the day count.
type CareAnalysis struct {
	RequiresCare     bool              `json:"requires_care"`
	TotalHoursPerDay float64           `json:"total_hours_per_day"`
	TotalCareHours   float64           `json:"total_care_hours"`
	DailyCareDetails []DailyCareDetail `json:"daily_care_details"`
	CareVaries       bool              `json:"care_varies"`
}

// FlexString decodes a JSON string, number, or bool into its text form.
// Form answers store the same field either way depending on the widget.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatBool(v))
	return nil
}

// RawCareValues is the per-period answer: how many carers and for how long.
type RawCareValues struct {
	Carers   FlexString `json:"carers"`
	Time     FlexString `json:"time"`
	Duration FlexString `json:"duration,omitempty"`
}

// UnmarshalJSON accepts the {carers, time} object or bare hours as a number
// or string, in which case one carer is implied.
func (v *RawCareValues) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = RawCareValues{}
		return nil
	}
	if b[0] == '{' {
		type plain RawCareValues
		var p plain
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		*v = RawCareValues(p)
		return nil
	}
	var hours FlexString
	if err := json.Unmarshal(b, &hours); err != nil {
		return err
	}
	*v = RawCareValues{Carers: "1", Time: hours}
	return nil
}

// RawCareEntry is one item of the care question's answer as submitted.
type RawCareEntry struct {
	Date   string        `json:"date"`
	Care   CarePeriod    `json:"care"`
	Values RawCareValues `json:"values"`
}

// RawCareAnswer is the care question's answer. It arrives either as a bare
// array of entries or as an object with careData/defaultValues/careVaries.
type RawCareAnswer struct {
	CareData      []RawCareEntry               `json:"careData"`
	DefaultValues map[CarePeriod]RawCareValues `json:"defaultValues,omitempty"`
	CareVaries    bool                         `json:"careVaries"`
}

// UnmarshalJSON accepts both the bare-array and the object form. Entries
// and default periods that do not decode are skipped one by one; only a
// document that is neither an array nor an object is an error.
func (a *RawCareAnswer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		entries, err := decodeCareEntries(b)
		if err != nil {
			return err
		}
		*a = RawCareAnswer{CareData: entries}
		return nil
	}

	var fields struct {
		CareData      json.RawMessage `json:"careData"`
		DefaultValues json.RawMessage `json:"defaultValues"`
		CareVaries    json.RawMessage `json:"careVaries"`
	}
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var out RawCareAnswer
	out.CareData, _ = decodeCareEntries(fields.CareData)
	out.DefaultValues = decodeDefaultValues(fields.DefaultValues)
	if len(fields.CareVaries) > 0 {
		_ = json.Unmarshal(fields.CareVaries, &out.CareVaries)
	}
	*a = out
	return nil
}

func decodeCareEntries(b []byte) ([]RawCareEntry, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	entries := make([]RawCareEntry, 0, len(raw))
	for _, r := range raw {
		var e RawCareEntry
		if err := json.Unmarshal(r, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeDefaultValues(b []byte) map[CarePeriod]RawCareValues {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	var raw map[CarePeriod]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	values := make(map[CarePeriod]RawCareValues, len(raw))
	for period, r := range raw {
		var v RawCareValues
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		values[period] = v
	}
	return values
}

// CareSource is what a single candidate location yields: either an already
// normalized analysis or a raw answer that still needs normalizing.
type CareSource struct {
	Analysis *CareAnalysis
	Raw      any
}

// SummarySnapshot is a stored booking summary that may carry the care answer.
type SummarySnapshot struct {
	Care    *CareAnalysis `json:"care,omitempty"`
	CareRaw any           `json:"care_raw,omitempty"`
}

// FormQuestion is one answered question on an in-progress form page.
type FormQuestion struct {
	QuestionKey string `json:"question_key"`
	Answer      any    `json:"answer"`
}

// FormSection groups questions on a form page.
type FormSection struct {
	Questions []FormQuestion `json:"questions"`
}

// FormPage is one page of the in-progress booking form.
type FormPage struct {
	Title    string        `json:"title"`
	Sections []FormSection `json:"sections"`
}

// QAPair is a persisted question/answer pair of a booking.
type QAPair struct {
	QuestionKey string `json:"question_key"`
	Answer      any    `json:"answer"`
}

// CareSnapshot gathers every place a booking may hold its care answer.
// Fields are consulted in declaration order; see pricing.BookingCareCandidates.
type CareSnapshot struct {
	Processed       *CareAnalysis    `json:"processed,omitempty"`
	Raw             any              `json:"raw,omitempty"`
	CurrentSummary  *SummarySnapshot `json:"current_summary,omitempty"`
	OriginalBooking *SummarySnapshot `json:"original_booking,omitempty"`
	FormPages       []FormPage       `json:"form_pages,omitempty"`
	Answers         []QAPair         `json:"answers,omitempty"`
}
