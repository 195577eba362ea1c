package pricing_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/pricing"
)

func processed(hours float64) *domain.CareAnalysis {
	return &domain.CareAnalysis{
		RequiresCare:     true,
		TotalHoursPerDay: hours,
		TotalCareHours:   hours,
		DailyCareDetails: []domain.DailyCareDetail{},
	}
}

func TestResolveCare_StopsAtFirstUsableCandidate(t *testing.T) {
	var calls []int
	candidate := func(i int, src domain.CareSource, ok bool) pricing.CareCandidate {
		return func() (domain.CareSource, bool) {
			calls = append(calls, i)
			return src, ok
		}
	}

	got := pricing.ResolveCare([]pricing.CareCandidate{
		candidate(0, domain.CareSource{}, false),
		candidate(1, domain.CareSource{Raw: `{"careData": [`}, true),
		candidate(2, domain.CareSource{Raw: defaultsOnlyAnswer}, true),
		candidate(3, domain.CareSource{Analysis: processed(99)}, true),
	}, "10/01/2025", 2, nil)

	require.NotNil(t, got)
	assert.Equal(t, 10.0, got.TotalCareHours)
	assert.Equal(t, []int{0, 1, 2}, calls, "lower-priority candidates must not be consulted")
}

func TestResolveCare_ProcessedAnalysisReturnedAsIs(t *testing.T) {
	stored := processed(7)

	got := pricing.ResolveCare([]pricing.CareCandidate{
		func() (domain.CareSource, bool) { return domain.CareSource{Analysis: stored}, true },
	}, "10/01/2025", 2, nil)

	require.NotNil(t, got)
	assert.Equal(t, *stored, *got)
	assert.NotSame(t, stored, got)
}

func TestResolveCare_NoData(t *testing.T) {
	assert.Nil(t, pricing.ResolveCare(nil, "10/01/2025", 2, nil))
	assert.Nil(t, pricing.ResolveCare(pricing.BookingCareCandidates(domain.CareSnapshot{}), "10/01/2025", 2, nil))
}

func TestBookingCareCandidates_PriorityOrder(t *testing.T) {
	formPages := []domain.FormPage{{
		Title: "Care",
		Sections: []domain.FormSection{{Questions: []domain.FormQuestion{
			{QuestionKey: "dietary-requirements", Answer: "none"},
			{QuestionKey: domain.CareQuestionKey, Answer: defaultsOnlyAnswer},
		}}},
	}}
	// Morning-only care: 8h on the 11th, and the same 8h as the derived
	// default on the 12th checkout morning.
	answers := []domain.QAPair{{QuestionKey: domain.CareQuestionKey, Answer: `[{"date":"11/01/2025","care":"morning","values":{"carers":"1","time":"8 hours"}}]`}}

	tests := []struct {
		name     string
		snapshot domain.CareSnapshot
		want     float64
	}{
		{
			name:     "direct processed beats everything",
			snapshot: domain.CareSnapshot{Processed: processed(1), Raw: defaultsOnlyAnswer, CurrentSummary: &domain.SummarySnapshot{Care: processed(2)}},
			want:     1,
		},
		{
			name:     "direct raw beats summary",
			snapshot: domain.CareSnapshot{Raw: json.RawMessage(defaultsOnlyAnswer), CurrentSummary: &domain.SummarySnapshot{Care: processed(2)}},
			want:     10,
		},
		{
			name:     "summary processed beats summary raw",
			snapshot: domain.CareSnapshot{Raw: json.RawMessage(nil), CurrentSummary: &domain.SummarySnapshot{Care: processed(2), CareRaw: defaultsOnlyAnswer}},
			want:     2,
		},
		{
			name:     "summary raw",
			snapshot: domain.CareSnapshot{CurrentSummary: &domain.SummarySnapshot{CareRaw: defaultsOnlyAnswer}, OriginalBooking: &domain.SummarySnapshot{Care: processed(3)}},
			want:     10,
		},
		{
			name:     "original booking processed",
			snapshot: domain.CareSnapshot{OriginalBooking: &domain.SummarySnapshot{Care: processed(3), CareRaw: defaultsOnlyAnswer}, FormPages: formPages},
			want:     3,
		},
		{
			name:     "original booking raw",
			snapshot: domain.CareSnapshot{OriginalBooking: &domain.SummarySnapshot{CareRaw: defaultsOnlyAnswer}, Answers: answers},
			want:     10,
		},
		{
			name:     "form pages beat persisted answers",
			snapshot: domain.CareSnapshot{FormPages: formPages, Answers: answers},
			want:     10,
		},
		{
			name:     "persisted answers last",
			snapshot: domain.CareSnapshot{Answers: answers},
			want:     16,
		},
		{
			name:     "unusable raw falls through",
			snapshot: domain.CareSnapshot{Raw: "not json", Answers: answers},
			want:     16,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ResolveCare(pricing.BookingCareCandidates(tc.snapshot), "10/01/2025", 2, nil)

			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.TotalCareHours)
		})
	}
}
