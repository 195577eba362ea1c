package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

const cacheKeyPrefix = "holidays:"

// sharedLookupTimeout bounds a coalesced lookup, which no longer follows
// any single caller's deadline.
const sharedLookupTimeout = 30 * time.Second

// CachedOracle is a read-through Redis cache in front of another Oracle.
// Concurrent lookups for the same range share one call to the inner oracle.
// Redis failures are logged and fall through to the inner oracle; a nil
// client disables caching but keeps the coalescing.
type CachedOracle struct {
	inner  Oracle
	client redis.Cmdable
	region string
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewCachedOracle wraps inner with a cache. Pass a nil client to run without Redis.
func NewCachedOracle(inner Oracle, client redis.Cmdable, region string, ttl time.Duration, logger *slog.Logger) *CachedOracle {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedOracle{inner: inner, client: client, region: region, ttl: ttl, logger: logger}
}

func (c *CachedOracle) key(from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", cacheKeyPrefix, c.region, from.Format(time.DateOnly), to.Format(time.DateOnly))
}

// Holidays implements Oracle. The shared lookup is detached from any one
// caller's context, so a caller that gives up does not fail the others;
// each caller still stops waiting when its own ctx is done.
func (c *CachedOracle) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	key := c.key(from, to)

	ch := c.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()

		if cached, ok := c.get(lookupCtx, key); ok {
			return cached, nil
		}
		holidays, err := c.inner.Holidays(lookupCtx, from, to)
		if err != nil {
			return nil, err
		}
		c.set(lookupCtx, key, holidays)
		return holidays, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("holiday.CachedOracle.Holidays: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("holiday.CachedOracle.Holidays: %w", res.Err)
		}
		return res.Val.([]domain.Holiday), nil
	}
}

// get reads a cached range. Misses and unreadable entries both report !ok.
func (c *CachedOracle) get(ctx context.Context, key string) ([]domain.Holiday, bool) {
	if c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("holiday cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var holidays []domain.Holiday
	if err := json.Unmarshal(val, &holidays); err != nil {
		c.logger.Warn("holiday cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return holidays, true
}

func (c *CachedOracle) set(ctx context.Context, key string, holidays []domain.Holiday) {
	if c.client == nil {
		return
	}
	if holidays == nil {
		holidays = []domain.Holiday{}
	}
	data, err := json.Marshal(holidays)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("holiday cache write failed", "key", key, "error", err)
	}
}
