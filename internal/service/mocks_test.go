package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/holiday"
	"github.com/pkordes/respite-booking/backend/internal/repo"
)

// mockPackageRepo is a hand-written test double for repo.PackageRepo.
// Each method is a function field; set only the ones your test needs.
type mockPackageRepo struct {
	create    func(ctx context.Context, pkg domain.Package) (domain.Package, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Package, error)
	getByCode func(ctx context.Context, code string) (domain.Package, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error)
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	return m.create(ctx, pkg)
}
func (m *mockPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	return m.getByID(ctx, id)
}
func (m *mockPackageRepo) GetByCode(ctx context.Context, code string) (domain.Package, error) {
	return m.getByCode(ctx, code)
}
func (m *mockPackageRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error) {
	return m.listPaged(ctx, p)
}

var _ repo.PackageRepo = (*mockPackageRepo)(nil)

// mockBookingRepo is a hand-written test double for repo.BookingRepo.
type mockBookingRepo struct {
	create      func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	addAnswer   func(ctx context.Context, a domain.BookingAnswer) (domain.BookingAnswer, error)
	listAnswers func(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingAnswer, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingRepo) AddAnswer(ctx context.Context, a domain.BookingAnswer) (domain.BookingAnswer, error) {
	return m.addAnswer(ctx, a)
}
func (m *mockBookingRepo) ListAnswers(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingAnswer, error) {
	return m.listAnswers(ctx, bookingID)
}

var _ repo.BookingRepo = (*mockBookingRepo)(nil)

// oracleFunc adapts a function to holiday.Oracle.
type oracleFunc func(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)

func (f oracleFunc) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	return f(ctx, from, to)
}

var _ holiday.Oracle = oracleFunc(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
