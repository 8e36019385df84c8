package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// RankingCache 用户积分排行榜的 Redis 缓存，每个榜单长度一个 Key
type RankingCache interface {
	// Get 未命中时返回 myErrors.ErrCacheMiss
	Get(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error)
	Set(ctx context.Context, limit int, entries []*vo.RankingEntryVO) error
	// Invalidate 删除所有长度的榜单缓存，积分或封禁状态变化后调用
	Invalidate(ctx context.Context) error
}

type rankingCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
	ttl         time.Duration
}

func NewRankingCache(redisClient *redis.Client, logger *zap.Logger, ttl time.Duration) RankingCache {
	if ttl <= 0 {
		ttl = constant.DefaultRankingTTL
	}
	return &rankingCache{redisClient: redisClient, logger: logger, ttl: ttl}
}

func rankingKey(limit int) string {
	return fmt.Sprintf("%s%d", constant.UserRankingPrefix, limit)
}

func (c *rankingCache) Get(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error) {
	raw, err := c.redisClient.Get(ctx, rankingKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("读取排行榜缓存失败: %w", err)
	}
	var entries []*vo.RankingEntryVO
	if err := json.Unmarshal(raw, &entries); err != nil {
		// 缓存内容损坏时按未命中处理，由调用方回源并覆盖
		c.logger.Warn("排行榜缓存反序列化失败", zap.Int("limit", limit), zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return entries, nil
}

func (c *rankingCache) Set(ctx context.Context, limit int, entries []*vo.RankingEntryVO) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("序列化排行榜失败: %w", err)
	}
	if err := c.redisClient.Set(ctx, rankingKey(limit), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("写入排行榜缓存失败: %w", err)
	}
	return nil
}

func (c *rankingCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.redisClient.Scan(ctx, cursor, constant.UserRankingPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描排行榜缓存失败: %w", err)
		}
		if len(keys) > 0 {
			if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("删除排行榜缓存失败: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
