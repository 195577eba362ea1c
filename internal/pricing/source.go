package pricing

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// CareCandidate is one place the care answer may live. It returns false
// when that place holds nothing.
type CareCandidate func() (domain.CareSource, bool)

// ResolveCare tries candidates in order and returns the analysis from the
// first one holding usable data. Later candidates are never called once one
// succeeds. A processed analysis is returned as stored; a raw answer is
// normalized against the stay. Nil means no candidate had care data.
func ResolveCare(candidates []CareCandidate, stayDates string, nights int, holidays HolidaySet) *domain.CareAnalysis {
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		src, ok := candidate()
		if !ok {
			continue
		}
		if src.Analysis != nil {
			analysis := cloneAnalysis(*src.Analysis)
			return &analysis
		}
		answer, ok := DecodeCareAnswer(src.Raw)
		if !ok || !hasCareData(answer) {
			continue
		}
		analysis := normalizeAnswer(answer, GenerateStayDates(stayDates, nights, holidays))
		return &analysis
	}
	return nil
}

// cloneAnalysis copies the details slice so callers never share it with the
// snapshot the analysis came from.
func cloneAnalysis(a domain.CareAnalysis) domain.CareAnalysis {
	details := make([]domain.DailyCareDetail, len(a.DailyCareDetails))
	copy(details, a.DailyCareDetails)
	a.DailyCareDetails = details
	return a
}

// BookingCareCandidates lists the care answer locations of a booking from
// highest to lowest priority: the answer passed in directly (processed,
// then raw), the current summary, the original booking, the in-progress
// form pages, and finally the persisted question/answer pairs.
func BookingCareCandidates(s domain.CareSnapshot) []CareCandidate {
	return []CareCandidate{
		processedCandidate(s.Processed),
		rawCandidate(s.Raw),
		func() (domain.CareSource, bool) {
			if s.CurrentSummary == nil {
				return domain.CareSource{}, false
			}
			return processedCandidate(s.CurrentSummary.Care)()
		},
		func() (domain.CareSource, bool) {
			if s.CurrentSummary == nil {
				return domain.CareSource{}, false
			}
			return rawCandidate(s.CurrentSummary.CareRaw)()
		},
		func() (domain.CareSource, bool) {
			if s.OriginalBooking == nil {
				return domain.CareSource{}, false
			}
			return processedCandidate(s.OriginalBooking.Care)()
		},
		func() (domain.CareSource, bool) {
			if s.OriginalBooking == nil {
				return domain.CareSource{}, false
			}
			return rawCandidate(s.OriginalBooking.CareRaw)()
		},
		func() (domain.CareSource, bool) {
			return rawCandidate(findFormAnswer(s.FormPages, domain.CareQuestionKey))()
		},
		func() (domain.CareSource, bool) {
			return rawCandidate(findQAAnswer(s.Answers, domain.CareQuestionKey))()
		},
	}
}

func processedCandidate(a *domain.CareAnalysis) CareCandidate {
	return func() (domain.CareSource, bool) {
		if a == nil {
			return domain.CareSource{}, false
		}
		return domain.CareSource{Analysis: a}, true
	}
}

func rawCandidate(raw any) CareCandidate {
	return func() (domain.CareSource, bool) {
		if isAbsent(raw) {
			return domain.CareSource{}, false
		}
		return domain.CareSource{Raw: raw}, true
	}
}

// isAbsent treats nil, empty strings, empty byte slices, and JSON null as
// no answer at all.
func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(x)
		return s == "" || s == "null"
	case []byte:
		b := bytes.TrimSpace(x)
		return len(b) == 0 || bytes.Equal(b, []byte("null"))
	case json.RawMessage:
		b := bytes.TrimSpace(x)
		return len(b) == 0 || bytes.Equal(b, []byte("null"))
	}
	return false
}

func findFormAnswer(pages []domain.FormPage, key string) any {
	for _, page := range pages {
		for _, section := range page.Sections {
			for _, q := range section.Questions {
				if q.QuestionKey == key && !isAbsent(q.Answer) {
					return q.Answer
				}
			}
		}
	}
	return nil
}

func findQAAnswer(pairs []domain.QAPair, key string) any {
	for _, qa := range pairs {
		if qa.QuestionKey == key && !isAbsent(qa.Answer) {
			return qa.Answer
		}
	}
	return nil
}
