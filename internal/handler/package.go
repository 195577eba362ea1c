package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PackageList is the body of GET /packages.
type PackageList struct {
	Data       []domain.Package `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// ListPackages handles GET /packages.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	page, ok := optionalInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := optionalInt(w, r, "limit")
	if !ok {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	pkgs, total, err := s.packages.List(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err, "package not found")
		return
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, PackageList{
		Data: pkgs,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// optionalInt reads an integer query parameter. An absent parameter yields
// nil; a malformed one is answered with 422 and ok=false.
func optionalInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(name+" must be an integer"))
		return nil, false
	}
	return &n, true
}
