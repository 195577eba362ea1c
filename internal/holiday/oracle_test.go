package holiday_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/holiday"
	"github.com/pkordes/respite-booking/backend/internal/repo"
)

// oracleFunc adapts a function to holiday.Oracle.
type oracleFunc func(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)

func (f oracleFunc) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	return f(ctx, from, to)
}

// mockHolidayRepo is a hand-written test double for repo.HolidayRepo.
type mockHolidayRepo struct {
	upsert      func(ctx context.Context, h domain.Holiday) (domain.Holiday, error)
	listBetween func(ctx context.Context, region string, from, to time.Time) ([]domain.Holiday, error)
}

func (m *mockHolidayRepo) Upsert(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	return m.upsert(ctx, h)
}
func (m *mockHolidayRepo) ListBetween(ctx context.Context, region string, from, to time.Time) ([]domain.Holiday, error) {
	return m.listBetween(ctx, region, from, to)
}

var _ repo.HolidayRepo = (*mockHolidayRepo)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepoOracle_PassesRegionAndRange(t *testing.T) {
	var gotRegion string
	r := &mockHolidayRepo{
		listBetween: func(_ context.Context, region string, from, to time.Time) ([]domain.Holiday, error) {
			gotRegion = region
			assert.True(t, from.Equal(date(2031, 12, 20)))
			assert.True(t, to.Equal(date(2031, 12, 28)))
			return []domain.Holiday{{Region: region, Date: date(2031, 12, 25), Name: "Christmas Day"}}, nil
		},
	}

	got, err := holiday.NewRepoOracle(r, "NSW").Holidays(context.Background(), date(2031, 12, 20), date(2031, 12, 28))

	require.NoError(t, err)
	assert.Equal(t, "NSW", gotRegion)
	assert.Len(t, got, 1)
}

func TestRepoOracle_WrapsError(t *testing.T) {
	dbErr := errors.New("connection refused")
	r := &mockHolidayRepo{
		listBetween: func(context.Context, string, time.Time, time.Time) ([]domain.Holiday, error) {
			return nil, dbErr
		},
	}

	_, err := holiday.NewRepoOracle(r, "NSW").Holidays(context.Background(), date(2031, 1, 1), date(2031, 1, 2))

	assert.ErrorIs(t, err, dbErr)
}

func TestLookup_ReturnsHolidaySet(t *testing.T) {
	oracle := oracleFunc(func(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
		return []domain.Holiday{{Date: date(2031, 12, 25)}, {Date: date(2031, 12, 26)}}, nil
	})

	set := holiday.Lookup(context.Background(), oracle, date(2031, 12, 24), date(2031, 12, 27), time.Second, discardLogger())

	assert.True(t, set.Contains(date(2031, 12, 25)))
	assert.True(t, set.Contains(date(2031, 12, 26)))
	assert.False(t, set.Contains(date(2031, 12, 24)))
}

func TestLookup_ErrorDegradesToEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	oracle := oracleFunc(func(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
		return nil, errors.New("upstream down")
	})

	set := holiday.Lookup(context.Background(), oracle, date(2031, 12, 24), date(2031, 12, 27), time.Second, logger)

	assert.Empty(t, set)
	assert.Contains(t, buf.String(), "holiday lookup failed")
	assert.Contains(t, buf.String(), "upstream down")
}

func TestLookup_TimeoutDegradesToEmpty(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	// Ignores ctx on purpose: Lookup must still return on time.
	oracle := oracleFunc(func(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
		<-release
		return []domain.Holiday{{Date: date(2031, 12, 25)}}, nil
	})

	start := time.Now()
	set := holiday.Lookup(context.Background(), oracle, date(2031, 12, 24), date(2031, 12, 27), 20*time.Millisecond, discardLogger())

	assert.Empty(t, set)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLookup_CancelledContextDegradesToEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	oracle := oracleFunc(func(ctx context.Context, _, _ time.Time) ([]domain.Holiday, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	set := holiday.Lookup(ctx, oracle, date(2031, 1, 1), date(2031, 1, 5), 0, discardLogger())

	assert.Empty(t, set)
}

func TestLookup_NilOracle(t *testing.T) {
	set := holiday.Lookup(context.Background(), nil, date(2031, 1, 1), date(2031, 1, 5), time.Second, nil)

	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestFetch_ReturnsRecords(t *testing.T) {
	oracle := oracleFunc(func(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
		return []domain.Holiday{{Date: date(2031, 1, 1), Name: "New Year's Day"}}, nil
	})

	got := holiday.Fetch(context.Background(), oracle, date(2031, 1, 1), date(2031, 1, 3), time.Second, discardLogger())

	require.Len(t, got, 1)
	assert.Equal(t, "New Year's Day", got[0].Name)
}

func TestFetch_ErrorReturnsNil(t *testing.T) {
	oracle := oracleFunc(func(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
		return nil, errors.New("boom")
	})

	got := holiday.Fetch(context.Background(), oracle, date(2031, 1, 1), date(2031, 1, 3), time.Second, discardLogger())

	assert.Nil(t, got)
}
