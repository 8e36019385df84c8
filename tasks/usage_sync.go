package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// UsageSyncTask 定时把 Redis 中累计的工具使用次数写回数据库
type UsageSyncTask struct {
	usageRepo redis.ListingUsageRepository
	batchRepo postgres.ListingBatchRepository
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewUsageSyncTask 创建并立即启动定时任务
func NewUsageSyncTask(usageRepo redis.ListingUsageRepository, batchRepo postgres.ListingBatchRepository, logger *zap.Logger) *UsageSyncTask {
	task := &UsageSyncTask{
		usageRepo: usageRepo,
		batchRepo: batchRepo,
		cron:      cron.New(),
		logger:    logger,
	}
	task.startCronJob()
	return task
}

func (t *UsageSyncTask) startCronJob() {
	schedule := constant.SyncUsageCountInterval
	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		synced := t.syncUsageCounts(ctx)
		t.logger.Info("工具使用次数同步任务执行完毕", zap.Int("listings", synced), zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加使用次数同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("工具使用次数同步定时任务已启动", zap.String("schedule", schedule), zap.Uint("cronEntryID", uint(entryID)))
}

// syncUsageCounts 取走 Redis 中的增量并写入数据库，失败时把增量加回 Redis。
// 返回成功写入的工具数量。
func (t *UsageSyncTask) syncUsageCounts(ctx context.Context) int {
	deltas, err := t.usageRepo.DrainAll(ctx)
	if err != nil {
		// 出错前已取走的增量仍然要写回数据库
		t.logger.Error("从 Redis 取出使用次数失败", zap.Error(err), zap.Int("drained", len(deltas)))
	}
	if len(deltas) == 0 {
		return 0
	}

	if err := t.batchRepo.BatchIncrementUsageCounts(ctx, deltas); err != nil {
		t.logger.Error("批量写入使用次数失败，增量已放回 Redis 等待下次同步", zap.Error(err), zap.Int("listings", len(deltas)))
		if restoreErr := t.usageRepo.Restore(context.Background(), deltas); restoreErr != nil {
			t.logger.Error("放回使用次数增量失败，这部分计数将丢失", zap.Error(restoreErr), zap.Any("deltas", deltas))
		}
		return 0
	}
	return len(deltas)
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭
func (t *UsageSyncTask) Stop() context.Context {
	t.logger.Info("正在停止工具使用次数同步定时任务...")
	return t.cron.Stop()
}
