// Package holiday answers "which dates in this range are public holidays?"
// for the quote pipeline. Lookups are bounded by a timeout and degrade to
// "no holidays" instead of failing a quote.
package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/pricing"
	"github.com/pkordes/respite-booking/backend/internal/repo"
)

// Oracle returns the public holidays within an inclusive date range.
type Oracle interface {
	Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
}

// RepoOracle serves holidays for one region from the database.
type RepoOracle struct {
	repo   repo.HolidayRepo
	region string
}

// NewRepoOracle constructs a RepoOracle for the given region.
func NewRepoOracle(r repo.HolidayRepo, region string) *RepoOracle {
	return &RepoOracle{repo: r, region: region}
}

// Holidays implements Oracle.
func (o *RepoOracle) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	holidays, err := o.repo.ListBetween(ctx, o.region, from, to)
	if err != nil {
		return nil, fmt.Errorf("holiday.RepoOracle.Holidays: %w", err)
	}
	return holidays, nil
}

// Lookup asks the oracle for holidays in [from, to] and returns them as a
// HolidaySet. See Fetch for the failure behaviour.
func Lookup(ctx context.Context, oracle Oracle, from, to time.Time, timeout time.Duration, logger *slog.Logger) pricing.HolidaySet {
	return pricing.NewHolidaySet(Fetch(ctx, oracle, from, to, timeout, logger))
}

// Fetch asks the oracle for holidays in [from, to]. If the oracle fails or
// does not answer within timeout, the failure is logged and nil is returned,
// so every day is classified by weekday alone. A timeout <= 0 means no extra
// deadline beyond ctx.
func Fetch(ctx context.Context, oracle Oracle, from, to time.Time, timeout time.Duration, logger *slog.Logger) []domain.Holiday {
	if oracle == nil {
		return nil
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		holidays []domain.Holiday
		err      error
	}
	// Buffered so the goroutine never blocks once we stop waiting.
	ch := make(chan result, 1)
	go func() {
		h, err := oracle.Holidays(ctx, from, to)
		ch <- result{holidays: h, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			logDegraded(logger, from, to, r.err)
			return nil
		}
		return r.holidays
	case <-ctx.Done():
		logDegraded(logger, from, to, ctx.Err())
		return nil
	}
}

func logDegraded(logger *slog.Logger, from, to time.Time, err error) {
	if logger == nil {
		return
	}
	logger.Warn("holiday lookup failed; pricing without holidays",
		"from", from.Format(time.DateOnly),
		"to", to.Format(time.DateOnly),
		"error", err,
	)
}
