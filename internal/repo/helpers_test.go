package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/testutil"
)

// newTestTx opens a transaction against the test database. It is rolled back
// when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// packageFixture returns a dynamic NDIS package with three line items.
// Callers can override individual fields after calling this function.
func packageFixture(code string) domain.Package {
	return domain.Package{
		Code:   code,
		Name:   "Respite " + code,
		Funder: domain.FunderNDIS,
		LineItems: []domain.PackageLineItem{
			{
				Type:         domain.LineItemRoom,
				RateType:     domain.RateWeekday,
				RateCategory: domain.RateCategoryDay,
				PricePerUnit: 250.5,
				Code:         "01_055_0115_1_1",
				Description:  "Accommodation weekday",
			},
			{
				Type:         domain.LineItemCare,
				RateType:     domain.RateWeekday,
				RateCategory: domain.RateCategoryHour,
				CareTime:     domain.CareTimeMorning,
				PricePerUnit: 67.56,
				Code:         "01_011_0107_1_1",
				Description:  "Morning care",
			},
			{
				Type:         domain.LineItemSleepOver,
				RateCategory: domain.RateCategoryNight,
				PricePerUnit: 297.6,
				Code:         "01_010_0107_1_1",
				Description:  "Sleepover",
			},
		},
	}
}
