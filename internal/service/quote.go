// Package service contains the business logic of the quote API.
// Services validate inputs, orchestrate repo and holiday lookups, and hand
// a complete snapshot to the pricing package. No SQL lives here.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/holiday"
	"github.com/pkordes/respite-booking/backend/internal/pricing"
	"github.com/pkordes/respite-booking/backend/internal/repo"
)

// QuoteService prices stays, either from a caller-supplied snapshot or from
// a stored booking.
type QuoteService struct {
	packages      repo.PackageRepo
	bookings      repo.BookingRepo
	holidays      holiday.Oracle
	lookupTimeout time.Duration
	logger        *slog.Logger
}

// NewQuoteService constructs a QuoteService. A nil oracle prices every day
// by weekday alone.
func NewQuoteService(
	packages repo.PackageRepo,
	bookings repo.BookingRepo,
	holidays holiday.Oracle,
	lookupTimeout time.Duration,
	logger *slog.Logger,
) *QuoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuoteService{
		packages:      packages,
		bookings:      bookings,
		holidays:      holidays,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Quote validates a snapshot request, resolves its package, and prices it.
func (s *QuoteService) Quote(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	if err := validateQuoteRequest(req); err != nil {
		return domain.Quote{}, fmt.Errorf("service.QuoteService.Quote: %w", err)
	}

	pkg, err := s.resolvePackage(ctx, req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.QuoteService.Quote: %w", err)
	}

	return pricing.BuildQuote(domain.QuoteInput{
		StayDates: req.StayDates,
		Nights:    req.Nights,
		Holidays:  s.lookupHolidays(ctx, req.StayDates, req.Nights),
		Care: domain.CareSnapshot{
			Processed: req.CareAnalysis,
			Raw:       rawJSON(req.Care),
			FormPages: req.FormPages,
			Answers:   req.Answers,
		},
		Package: pkg,
		Course:  domain.CourseFlag{HasCourse: req.HasCourse},
		Rooms:   req.Rooms,
		Funder:  req.Funder,
	}), nil
}

// QuoteBooking prices a stored booking. The care answer is taken from the
// booking's raw answer first, then its stored summary, then its persisted
// question/answer pairs.
func (s *QuoteService) QuoteBooking(ctx context.Context, id uuid.UUID) (domain.Quote, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.QuoteService.QuoteBooking: %w", err)
	}

	answers, err := s.bookings.ListAnswers(ctx, id)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.QuoteService.QuoteBooking: %w", err)
	}

	pkg, err := s.packages.GetByID(ctx, b.PackageID)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.QuoteService.QuoteBooking: package %s: %w", b.PackageID, err)
	}

	snapshot := domain.CareSnapshot{Raw: rawJSON(b.CareAnswer)}
	if b.CareSummary != nil {
		snapshot.CurrentSummary = &domain.SummarySnapshot{Care: b.CareSummary}
	}
	for _, a := range answers {
		snapshot.Answers = append(snapshot.Answers, domain.QAPair{QuestionKey: a.QuestionKey, Answer: a.Answer})
	}

	return pricing.BuildQuote(domain.QuoteInput{
		StayDates: b.StayDates,
		Nights:    b.Nights,
		Holidays:  s.lookupHolidays(ctx, b.StayDates, b.Nights),
		Care:      snapshot,
		Package:   pkg,
		Course:    domain.CourseFlag{HasCourse: b.HasCourse},
		Rooms:     b.Rooms,
		Funder:    b.Funder,
	}), nil
}

// resolvePackage loads the package selected by a validated request.
func (s *QuoteService) resolvePackage(ctx context.Context, req domain.QuoteRequest) (domain.Package, error) {
	switch {
	case req.PackageID != nil:
		return s.packages.GetByID(ctx, *req.PackageID)
	case req.PackageCode != "":
		return s.packages.GetByCode(ctx, req.PackageCode)
	default:
		pkg, _ := pricing.StaticPackage(req.StaticPackage, req.Funder)
		return pkg, nil
	}
}

// lookupHolidays fetches the holidays covering the stay. Stays whose dates
// do not parse need none.
func (s *QuoteService) lookupHolidays(ctx context.Context, stayDates string, nights int) []domain.Holiday {
	from, to, ok := pricing.StayRange(stayDates, nights)
	if !ok {
		return nil
	}
	return holiday.Fetch(ctx, s.holidays, from, to, s.lookupTimeout, s.logger)
}

func validateQuoteRequest(req domain.QuoteRequest) error {
	if req.Nights < 0 {
		return fmt.Errorf("%w: nights must not be negative", domain.ErrValidation)
	}
	if req.Nights > pricing.MaxStayNights {
		return fmt.Errorf("%w: nights must not exceed %d", domain.ErrValidation, pricing.MaxStayNights)
	}

	selectors := 0
	if req.PackageID != nil {
		selectors++
	}
	if req.PackageCode != "" {
		selectors++
	}
	if req.StaticPackage != "" {
		selectors++
	}
	if selectors != 1 {
		return fmt.Errorf("%w: exactly one of package_id, package_code, or static_package is required", domain.ErrValidation)
	}
	if req.StaticPackage != "" && !pricing.IsStaticPackageCode(req.StaticPackage) {
		return fmt.Errorf("%w: unknown static package %q", domain.ErrValidation, req.StaticPackage)
	}

	switch req.Funder {
	case "", domain.FunderNDIS, domain.FunderNDISSTA, domain.FunderSelf, domain.FunderFoundation:
	default:
		return fmt.Errorf("%w: unknown funder %q", domain.ErrValidation, req.Funder)
	}

	for i, r := range req.Rooms {
		if r.PricePerNight < 0 || r.UpgradePerNight < 0 {
			return fmt.Errorf("%w: room %d has a negative price", domain.ErrValidation, i)
		}
	}
	return nil
}

// rawJSON returns the answer for care resolution, or nil when absent so the
// next candidate is tried.
func rawJSON(b json.RawMessage) any {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.RawMessage(trimmed)
}
