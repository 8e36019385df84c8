package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/constant"
)

// ListingUsageRepository 工具使用次数的 Redis 写缓冲。
// - 详情页每次访问只做一次 INCR，定时任务把增量取走并批量写回数据库。
type ListingUsageRepository interface {
	// Increment 增加一次使用计数
	Increment(ctx context.Context, listingID uint64) error

	// DrainAll 使用 SCAN 遍历所有计数器，并用 GETDEL 原子地取走增量。
	// 返回 工具 ID -> 增量。取走后的计数器从 Redis 删除，新的访问会重新开始计数。
	DrainAll(ctx context.Context) (map[uint64]int64, error)

	// Restore 写回数据库失败时把增量加回 Redis，等待下一次同步
	Restore(ctx context.Context, deltas map[uint64]int64) error
}

type listingUsageRepository struct {
	redisClient *redis.Client
	logger      *zap.Logger
	syncCfg     config.UsageSyncConfig
}

func NewListingUsageRepository(redisClient *redis.Client, logger *zap.Logger, syncCfg config.UsageSyncConfig) ListingUsageRepository {
	return &listingUsageRepository{redisClient: redisClient, logger: logger, syncCfg: syncCfg}
}

func usageKey(listingID uint64) string {
	return fmt.Sprintf("%s%d", constant.ListingUsagePrefix, listingID)
}

func (r *listingUsageRepository) Increment(ctx context.Context, listingID uint64) error {
	if err := r.redisClient.Incr(ctx, usageKey(listingID)).Err(); err != nil {
		r.logger.Error("增加工具使用次数失败", zap.Uint64("listingID", listingID), zap.Error(err))
		return fmt.Errorf("增加工具 %d 使用次数失败: %w", listingID, err)
	}
	return nil
}

func (r *listingUsageRepository) DrainAll(ctx context.Context) (map[uint64]int64, error) {
	deltas := make(map[uint64]int64)
	matchPattern := constant.ListingUsagePrefix + "*"
	scanCount := r.syncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
	}
	startTime := time.Now()

	var cursor uint64
	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 命令失败", zap.Uint64("cursor", cursor), zap.Error(err))
			return deltas, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			pipe := r.redisClient.Pipeline()
			cmds := make([]*redis.StringCmd, len(keys))
			for i, key := range keys {
				cmds[i] = pipe.GetDel(ctx, key)
			}
			// 单个 key 在 SCAN 与 GETDEL 之间被删除时返回 redis.Nil，不视为失败
			if _, execErr := pipe.Exec(ctx); execErr != nil && execErr != redis.Nil {
				r.logger.Error("执行 GETDEL Pipeline 失败", zap.Int("keys", len(keys)), zap.Error(execErr))
				return deltas, fmt.Errorf("取走使用次数失败 (%d keys): %w", len(keys), execErr)
			}

			for i, key := range keys {
				listingID, parseErr := strconv.ParseUint(strings.TrimPrefix(key, constant.ListingUsagePrefix), 10, 64)
				if parseErr != nil {
					r.logger.Warn("无法从 Key 解析工具 ID，已跳过", zap.String("key", key))
					continue
				}
				count, cmdErr := cmds[i].Int64()
				if cmdErr != nil {
					if cmdErr != redis.Nil {
						r.logger.Warn("解析使用次数失败，已跳过", zap.String("key", key), zap.Error(cmdErr))
					}
					continue
				}
				deltas[listingID] += count
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("完成取走 Redis 使用次数",
		zap.Int("listings", len(deltas)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return deltas, nil
}

func (r *listingUsageRepository) Restore(ctx context.Context, deltas map[uint64]int64) error {
	if len(deltas) == 0 {
		return nil
	}
	pipe := r.redisClient.Pipeline()
	for id, delta := range deltas {
		pipe.IncrBy(ctx, usageKey(id), delta)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("写回使用次数增量失败", zap.Int("listings", len(deltas)), zap.Error(err))
		return fmt.Errorf("写回使用次数增量失败: %w", err)
	}
	return nil
}
