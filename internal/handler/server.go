// Package handler implements the HTTP handlers of the quote API.
// All handlers are methods on Server and are mounted by Server.Routes.
// Methods are split into resource files (health.go, package.go, quote.go)
// but share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// QuoteServicer defines the quote operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type QuoteServicer interface {
	Quote(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error)
	QuoteBooking(ctx context.Context, id uuid.UUID) (domain.Quote, error)
}

// PackageServicer defines the package operations the handlers depend on.
type PackageServicer interface {
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	quotes   QuoteServicer
	packages PackageServicer
	logger   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(quotes QuoteServicer, packages PackageServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{quotes: quotes, packages: packages, logger: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a router with every API endpoint registered.
// Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/packages", s.ListPackages)
	r.Post("/quotes", s.CreateQuote)
	r.Get("/bookings/{id}/quote", s.GetBookingQuote)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not_found", "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}
