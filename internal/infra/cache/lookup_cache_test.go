package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"scout/internal/domain/entity"
	mockSvc "scout/internal/mocks/service"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMergeResults_KeepsInputOrder(t *testing.T) {
	keys := []entity.ItemKey{"A", "B", "C", "A"}
	cached := map[entity.ItemKey]entity.LookupResult{
		"B": {Key: "B", Found: true, Title: "cached"},
	}
	fresh := []entity.LookupResult{
		{Key: "A", Found: true, Title: "fresh"},
	}

	merged := mergeResults(keys, cached, fresh)

	require.Len(t, merged, 4)
	assert.Equal(t, "fresh", merged[0].Title)
	assert.Equal(t, "cached", merged[1].Title)
	assert.Equal(t, entity.NotFoundResult("C"), merged[2])
	assert.Equal(t, merged[0], merged[3])
}

func TestMissingKeys_Deduplicates(t *testing.T) {
	cached := map[entity.ItemKey]entity.LookupResult{"B": {Key: "B"}}

	misses := missingKeys([]entity.ItemKey{"A", "B", "A", "C"}, cached)

	assert.Equal(t, []entity.ItemKey{"A", "C"}, misses)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "scout:lookup:SOLD:brake pad", cacheKey("Brake Pad", entity.SearchSold))
	assert.NotEqual(t, cacheKey("x", entity.SearchSold), cacheKey("x", entity.SearchActive))
}

// unreachableRedis returns a client whose commands fail fast.
func TestDecodeCached_UsesRequestedKey(t *testing.T) {
	stored, err := sonic.MarshalString(entity.LookupResult{Key: "ABC", Found: true, Title: "listing"})
	require.NoError(t, err)
	require.Equal(t, cacheKey("ABC", entity.SearchActive), cacheKey("abc", entity.SearchActive))

	result, err := decodeCached("abc", stored)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKey("abc"), result.Key)
	assert.True(t, result.Found)
	assert.Equal(t, "listing", result.Title)

	_, err = decodeCached("abc", "{not json")
	assert.Error(t, err)
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb
}

func TestCachedLookupProvider_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	keys := []entity.ItemKey{"A", "B"}
	want := []entity.LookupResult{{Key: "A", Found: true}, entity.NotFoundResult("B")}

	next := mockSvc.NewMockLookupProvider(t)
	next.EXPECT().Lookup(mock.Anything, keys, entity.SearchActive).Return(want, nil).Once()

	provider := NewCachedLookupProvider(next, unreachableRedis(t), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := provider.Lookup(ctx, keys, entity.SearchActive)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedLookupProvider_PropagatesProviderError(t *testing.T) {
	boom := errors.New("marketplace down")

	next := mockSvc.NewMockLookupProvider(t)
	next.EXPECT().Lookup(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom).Once()

	provider := NewCachedLookupProvider(next, unreachableRedis(t), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := provider.Lookup(context.Background(), []entity.ItemKey{"A"}, entity.SearchActive)
	assert.Nil(t, got)
	assert.Same(t, boom, err)
}
