package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

func TestSyncUsageCounts(t *testing.T) {
	db := testdb.New(t)
	u := testdb.User(t, db, "ana", 0)
	cat := testdb.Category(t, db, "chatbots", 1)
	listing := testdb.Listing(t, db, "chat", cat.ID, u.ID, enums.Approved)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	syncCfg := config.UsageSyncConfig{BatchSize: 10, ConcurrencyLevel: 1}
	usage := redis.NewListingUsageRepository(rdb, zap.NewNop(), syncCfg)
	task := &UsageSyncTask{
		usageRepo: usage,
		batchRepo: postgres.NewListingBatchRepository(db, zap.NewNop(), syncCfg),
		logger:    zap.NewNop(),
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, usage.Increment(ctx, listing.ID))
	}
	assert.Equal(t, 1, task.syncUsageCounts(ctx))

	var got entities.Listing
	require.NoError(t, db.First(&got, listing.ID).Error)
	assert.EqualValues(t, 3, got.UsageCount)

	// 没有新的访问时不写数据库
	assert.Equal(t, 0, task.syncUsageCounts(ctx))
}

type failingBatchRepo struct{}

func (failingBatchRepo) BatchIncrementUsageCounts(context.Context, map[uint64]int64) error {
	return errors.New("db down")
}

func TestSyncUsageCountsRestoresOnFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	usage := redis.NewListingUsageRepository(rdb, zap.NewNop(), config.UsageSyncConfig{})
	task := &UsageSyncTask{usageRepo: usage, batchRepo: failingBatchRepo{}, logger: zap.NewNop()}
	ctx := context.Background()

	require.NoError(t, usage.Increment(ctx, 5))
	require.NoError(t, usage.Increment(ctx, 5))
	assert.Equal(t, 0, task.syncUsageCounts(ctx))

	deltas, err := usage.DrainAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{5: 2}, deltas)
}

type fakeRefresher struct {
	limits []int
	failOn int
}

func (f *fakeRefresher) RefreshRanking(_ context.Context, limit int) ([]*vo.RankingEntryVO, error) {
	f.limits = append(f.limits, limit)
	if limit == f.failOn {
		return nil, errors.New("boom")
	}
	return nil, nil
}

func TestRankingRefreshAll(t *testing.T) {
	refresher := &fakeRefresher{failOn: 50}
	task := &RankingRefreshTask{refresher: refresher, limits: []int{10, 0, 50, 100}, logger: zap.NewNop()}

	assert.Equal(t, 2, task.refreshAll(context.Background()))
	assert.Equal(t, []int{10, 50, 100}, refresher.limits)
}
