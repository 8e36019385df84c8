package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestListingUsage_IncrementDrainRestore(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewListingUsageRepository(rdb, zap.NewNop(), config.UsageSyncConfig{ScanBatchSize: 2})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Increment(ctx, 7))
	}
	require.NoError(t, repo.Increment(ctx, 8))
	require.NoError(t, rdb.Set(ctx, "wiki:listing_usage:bad", "1", 0).Err())

	deltas, err := repo.DrainAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{7: 3, 8: 1}, deltas)
	assert.False(t, mr.Exists("wiki:listing_usage:7"), "取走后计数器应被删除")

	again, err := repo.DrainAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	require.NoError(t, repo.Restore(ctx, map[uint64]int64{7: 3}))
	require.NoError(t, repo.Increment(ctx, 7))
	v, err := mr.Get("wiki:listing_usage:7")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}

func TestRankingCache_GetSetInvalidate(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewRankingCache(rdb, zap.NewNop(), time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, 10)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)

	entries := []*vo.RankingEntryVO{{Position: 1, UserID: 3, Username: "ana", Points: 90}}
	require.NoError(t, cache.Set(ctx, 10, entries))
	require.NoError(t, cache.Set(ctx, 50, entries))
	assert.Equal(t, time.Minute, mr.TTL("wiki:user_ranking:10"))

	got, err := cache.Get(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ana", got[0].Username)

	require.NoError(t, cache.Invalidate(ctx))
	_, err = cache.Get(ctx, 10)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
	assert.False(t, mr.Exists("wiki:user_ranking:50"))

	require.NoError(t, rdb.Set(ctx, "wiki:user_ranking:5", "not-json", 0).Err())
	_, err = cache.Get(ctx, 5)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}
