package handler_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/handler"
)

// mockQuoteServicer is a hand-written test double for handler.QuoteServicer.
// Each method is a function field; set only the ones your test needs.
type mockQuoteServicer struct {
	quote        func(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error)
	quoteBooking func(ctx context.Context, id uuid.UUID) (domain.Quote, error)
}

func (m *mockQuoteServicer) Quote(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	return m.quote(ctx, req)
}
func (m *mockQuoteServicer) QuoteBooking(ctx context.Context, id uuid.UUID) (domain.Quote, error) {
	return m.quoteBooking(ctx, id)
}

var _ handler.QuoteServicer = (*mockQuoteServicer)(nil)

// mockPackageServicer is a hand-written test double for handler.PackageServicer.
type mockPackageServicer struct {
	list func(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error)
}

func (m *mockPackageServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error) {
	return m.list(ctx, p)
}

var _ handler.PackageServicer = (*mockPackageServicer)(nil)

// newHTTPHandler wires a Server with the given mocks behind its router.
func newHTTPHandler(quotes handler.QuoteServicer, packages handler.PackageServicer) http.Handler {
	return handler.NewServer(quotes, packages, nil).Routes()
}
