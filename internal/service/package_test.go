package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/service"
)

func TestPackageService_List(t *testing.T) {
	var gotParams domain.PaginationParams
	r := &mockPackageRepo{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Package, int64, error) {
			gotParams = p
			return []domain.Package{dynamicPackage()}, 7, nil
		},
	}

	pkgs, total, err := service.NewPackageService(r).List(context.Background(), domain.PaginationParams{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Len(t, pkgs, 1)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, gotParams)
}

func TestPackageService_List_EmptyIsNotNil(t *testing.T) {
	r := &mockPackageRepo{
		listPaged: func(context.Context, domain.PaginationParams) ([]domain.Package, int64, error) {
			return nil, 0, nil
		},
	}

	pkgs, _, err := service.NewPackageService(r).List(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, pkgs)
	assert.Empty(t, pkgs)
}

func TestPackageService_List_RepoError(t *testing.T) {
	dbErr := errors.New("timeout")
	r := &mockPackageRepo{
		listPaged: func(context.Context, domain.PaginationParams) ([]domain.Package, int64, error) {
			return nil, 0, dbErr
		},
	}

	_, _, err := service.NewPackageService(r).List(context.Background(), domain.NewPaginationParams(nil, nil))

	assert.ErrorIs(t, err, dbErr)
}
