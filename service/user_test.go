package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/repo/redis"
	"github.com/Xushengqwer/wiki_service/security"
)

func (f *fixture) userService(cache redis.RankingCache) UserService {
	return NewUserService(f.users, f.levels, f.badges, f.listings, f.reviews, f.activities, cache, zap.NewNop())
}

func TestRankingUsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := redis.NewRankingCache(rdb, zap.NewNop(), time.Minute)
	svc := f.userService(cache)

	ana := testdb.User(t, f.db, "ana", 150)
	testdb.User(t, f.db, "beto", 300)
	banned := testdb.User(t, f.db, "troll", 999)
	require.NoError(t, f.db.Model(banned).Update("is_banned", true).Error)
	require.NoError(t, f.db.Model(ana).Update("level", 2).Error)

	ranking, err := svc.Ranking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "beto", ranking[0].Username)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, 2, ranking[1].Position)
	require.NotNil(t, ranking[1].LevelInfo)
	assert.Equal(t, "Explorador", ranking[1].LevelInfo.Name)
	assert.True(t, mr.Exists("wiki:user_ranking:10"))

	// 缓存命中时不会看到数据库的新变化
	require.NoError(t, f.db.Model(ana).Update("points", 1000).Error)
	cached, err := svc.Ranking(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "beto", cached[0].Username)

	require.NoError(t, cache.Invalidate(ctx))
	fresh, err := svc.Ranking(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "ana", fresh[0].Username)
}

func TestRankingWithoutCache(t *testing.T) {
	f := newFixture(t)
	svc := f.userService(nil)
	for _, name := range []string{"a1", "a2", "a3"} {
		testdb.User(t, f.db, name, 10)
	}

	ranking, err := svc.Ranking(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, ranking, 2)
}

func TestPublicProfileAndFeeds(t *testing.T) {
	f := newFixture(t)
	svc := f.userService(nil)
	ctx := context.Background()

	ana := testdb.User(t, f.db, "ana", 120)
	beto := testdb.User(t, f.db, "beto", 0)
	cat := testdb.Category(t, f.db, "texto", 1)
	l := testdb.Listing(t, f.db, "alpha", cat.ID, ana.ID, enums.Approved)
	testdb.Listing(t, f.db, "beta", cat.ID, ana.ID, enums.Pending)
	require.NoError(t, f.db.Create(&entities.Review{ListingID: l.ID, UserID: ana.ID, Rating: 5, IsActive: true}).Error)
	require.NoError(t, f.db.Create(&entities.Activity{UserID: ana.ID, Type: "review_created", Points: 10}).Error)

	profile, err := svc.PublicProfile(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.Stats.ApprovedListings)
	assert.Equal(t, int64(1), profile.Stats.ActiveReviews)
	assert.NotNil(t, profile.LevelInfo)

	listings, err := svc.ListingsByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, listings, 1, "只返回已通过的工具")

	activity, err := svc.ActivityByUsername(ctx, "ana", 20)
	require.NoError(t, err)
	assert.Len(t, activity, 1)

	_, err = svc.PublicProfile(ctx, "nadie")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	require.NoError(t, f.db.Model(beto).Update("is_banned", true).Error)
	_, err = svc.ActivityByUsername(ctx, "beto", 20)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestRankingReflectsProfileChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := redis.NewRankingCache(rdb, zap.NewNop(), time.Minute)

	tokens, err := security.NewTokenManager(config.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	auth := NewAuthService(f.db, f.users, f.levels, f.badges, tokens, cache, zap.NewNop())
	users := f.userService(cache)

	ana := testdb.User(t, f.db, "ana", 150)
	ranking, err := users.Ranking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "ana", ranking[0].Username)

	newName, avatar := "ana_ia", "https://cdn.example.com/ana.png"
	_, err = auth.UpdateProfile(ctx, ana.ID, &dto.UpdateProfileRequest{Username: &newName, Avatar: &avatar})
	require.NoError(t, err)
	assert.False(t, mr.Exists("wiki:user_ranking:10"))

	ranking, err = users.Ranking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "ana_ia", ranking[0].Username)
	assert.Equal(t, avatar, ranking[0].Avatar)
}
