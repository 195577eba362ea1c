package service

import (
	"context"
	"fmt"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/repo"
)

// PackageService lists the packages a guest can be quoted for.
type PackageService struct {
	repo repo.PackageRepo
}

// NewPackageService constructs a PackageService backed by the provided PackageRepo.
func NewPackageService(r repo.PackageRepo) *PackageService {
	return &PackageService{repo: r}
}

// List returns one page of packages and the total package count.
// An empty page is returned as an empty slice, never nil.
func (s *PackageService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error) {
	pkgs, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.PackageService.List: %w", err)
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}
	return pkgs, total, nil
}
