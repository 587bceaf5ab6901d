// Package cache provides a Redis-backed cache in front of the lookup provider.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"scout/internal/domain/entity"
	"scout/internal/domain/service"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "scout:lookup:"

// CachedLookupProvider serves repeated lookups from Redis and forwards
// misses to the wrapped provider. Redis failures degrade to a pass-through.
type CachedLookupProvider struct {
	next   service.LookupProvider
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedLookupProvider wraps next with a Redis cache.
func NewCachedLookupProvider(next service.LookupProvider, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedLookupProvider {
	return &CachedLookupProvider{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

var _ service.LookupProvider = (*CachedLookupProvider)(nil)

// Lookup returns cached results where available and queries the rest.
func (p *CachedLookupProvider) Lookup(ctx context.Context, keys []entity.ItemKey, preference entity.SearchPreference) ([]entity.LookupResult, error) {
	if len(keys) == 0 {
		return []entity.LookupResult{}, nil
	}

	cached := p.readCached(ctx, keys, preference)

	misses := missingKeys(keys, cached)
	if len(misses) == 0 {
		return mergeResults(keys, cached, nil), nil
	}

	fresh, err := p.next.Lookup(ctx, misses, preference)
	if err != nil {
		return nil, err
	}

	p.writeCached(ctx, fresh, preference)

	return mergeResults(keys, cached, fresh), nil
}

func (p *CachedLookupProvider) readCached(ctx context.Context, keys []entity.ItemKey, preference entity.SearchPreference) map[entity.ItemKey]entity.LookupResult {
	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = cacheKey(key, preference)
	}

	values, err := p.rdb.MGet(ctx, cacheKeys...).Result()
	if err != nil {
		p.logger.Warn("Lookup cache read failed", slog.Any("error", err))

		return nil
	}

	hits := make(map[entity.ItemKey]entity.LookupResult, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		result, err := decodeCached(keys[i], raw)
		if err != nil {
			p.logger.Warn("Discarding malformed cache entry",
				slog.String("key", cacheKeys[i]),
				slog.Any("error", err),
			)

			continue
		}

		hits[keys[i]] = result
	}

	return hits
}

func (p *CachedLookupProvider) writeCached(ctx context.Context, results []entity.LookupResult, preference entity.SearchPreference) {
	pipe := p.rdb.Pipeline()

	for _, result := range results {
		payload, err := sonic.MarshalString(result)
		if err != nil {
			p.logger.Warn("Skipping unencodable lookup result", slog.Any("error", err))

			continue
		}

		pipe.Set(ctx, cacheKey(result.Key, preference), payload, p.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		p.logger.Warn("Lookup cache write failed", slog.Any("error", err))
	}
}

// decodeCached reports the hit under the requested key, since entries are
// shared between keys that differ only in case.
func decodeCached(key entity.ItemKey, raw string) (entity.LookupResult, error) {
	var result entity.LookupResult
	if err := sonic.UnmarshalString(raw, &result); err != nil {
		return entity.LookupResult{}, err
	}

	result.Key = key

	return result, nil
}

func cacheKey(key entity.ItemKey, preference entity.SearchPreference) string {
	return keyPrefix + preference.String() + ":" + strings.ToLower(key.String())
}

func missingKeys(keys []entity.ItemKey, cached map[entity.ItemKey]entity.LookupResult) []entity.ItemKey {
	misses := make([]entity.ItemKey, 0, len(keys))
	seen := make(map[entity.ItemKey]struct{}, len(keys))

	for _, key := range keys {
		if _, ok := cached[key]; ok {
			continue
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		misses = append(misses, key)
	}

	return misses
}

// mergeResults rebuilds the per-key result list in input order.
func mergeResults(keys []entity.ItemKey, cached map[entity.ItemKey]entity.LookupResult, fresh []entity.LookupResult) []entity.LookupResult {
	byKey := make(map[entity.ItemKey]entity.LookupResult, len(cached)+len(fresh))
	for key, result := range cached {
		byKey[key] = result
	}

	for _, result := range fresh {
		byKey[result.Key] = result
	}

	merged := make([]entity.LookupResult, len(keys))
	for i, key := range keys {
		result, ok := byKey[key]
		if !ok {
			result = entity.NotFoundResult(key)
		}

		merged[i] = result
	}

	return merged
}
