// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trade_review_backend/internal/feature/bars/domain/entity"
	"trade_review_backend/internal/feature/bars/usecase"
)

// CachingBarRepository decorates a BarRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The dataset only changes through
// offline ingest runs, so entries simply expire; there is no invalidation.
type CachingBarRepository struct {
	inner     usecase.BarRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingBarRepository decorates a BarRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "bars".
func NewCachingBarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BarRepository, namespace string) *CachingBarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "bars"
	}
	return &CachingBarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindBars retrieves candles, checking cache first then falling back to the source.
func (c *CachingBarRepository) FindBars(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
	key := c.filterKey("candles", "", f)
	return readThrough(ctx, c, key, func() ([]entity.Candle, error) {
		return c.inner.FindBars(ctx, f)
	})
}

// Columns retrieves the source column list, cached under a single key.
func (c *CachingBarRepository) Columns(ctx context.Context) ([]string, error) {
	key := c.namespace + ":columns"
	return readThrough(ctx, c, key, func() ([]string, error) {
		return c.inner.Columns(ctx)
	})
}

// FindIndicatorPoints retrieves indicator samples, checking cache first.
func (c *CachingBarRepository) FindIndicatorPoints(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error) {
	key := c.filterKey("ind", column, f)
	return readThrough(ctx, c, key, func() ([]entity.IndicatorPoint, error) {
		return c.inner.FindIndicatorPoints(ctx, column, f)
	})
}

// readThrough implements the shared cache-then-source lookup. Cache writes
// are best effort; a broken Redis never fails the request.
func readThrough[T any](ctx context.Context, c *CachingBarRepository, key string, load func() (T, error)) (T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the source
	out, err := load()
	if err != nil {
		return out, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// filterKey generates a cache key for a filtered query.
func (c *CachingBarRepository) filterKey(kind, column string, f entity.BarFilter) string {
	parts := []string{c.namespace, kind}
	if column != "" {
		parts = append(parts, safe(column))
	}
	parts = append(parts, safe(f.Contract), boundKey(f.StartMillis), boundKey(f.EndMillis))
	return strings.Join(parts, ":")
}

// boundKey renders an optional millisecond bound for use in a cache key.
func boundKey(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	if s == "" {
		return "-"
	}
	return s
}
