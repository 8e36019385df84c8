package postgres

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/models/entities"
)

// ListingBatchRepository 后台任务使用的批量写操作
type ListingBatchRepository interface {
	// BatchIncrementUsageCounts 将 Redis 中累积的使用次数增量并发地分批写入数据库。
	// 部分批次失败时记录并聚合错误，不中断其余批次。
	BatchIncrementUsageCounts(ctx context.Context, deltas map[uint64]int64) error
}

type listingBatchRepository struct {
	db      *gorm.DB
	logger  *zap.Logger
	syncCfg config.UsageSyncConfig
}

func NewListingBatchRepository(db *gorm.DB, logger *zap.Logger, syncCfg config.UsageSyncConfig) ListingBatchRepository {
	return &listingBatchRepository{db: db, logger: logger, syncCfg: syncCfg}
}

// usageDelta 在 worker 通道中传递的工具 ID 和增量
type usageDelta struct {
	ID    uint64
	Delta int64
}

func (r *listingBatchRepository) BatchIncrementUsageCounts(ctx context.Context, deltas map[uint64]int64) error {
	totalUpdates := len(deltas)
	if totalUpdates == 0 {
		return nil
	}

	batchSize := r.syncCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	concurrencyLevel := r.syncCfg.ConcurrencyLevel
	if concurrencyLevel <= 0 {
		concurrencyLevel = 1
	}

	items := make([]usageDelta, 0, totalUpdates)
	for id, delta := range deltas {
		if delta == 0 {
			continue
		}
		items = append(items, usageDelta{ID: id, Delta: delta})
	}
	totalBatches := (len(items) + batchSize - 1) / batchSize
	if totalBatches == 0 {
		return nil
	}
	r.logger.Info("开始并发批量写入使用次数",
		zap.Int("总数", len(items)),
		zap.Int("批大小", batchSize),
		zap.Int("并发数", concurrencyLevel),
		zap.Int("批次数", totalBatches),
	)

	var wg sync.WaitGroup
	jobs := make(chan []usageDelta, concurrencyLevel)
	results := make(chan error, totalBatches)
	startedAt := time.Now()

	for i := 0; i < concurrencyLevel; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for batch := range jobs {
				if ctx.Err() != nil {
					results <- fmt.Errorf("worker %d: context cancelled: %w", workerID, ctx.Err())
					continue
				}
				results <- r.processBatch(ctx, batch, workerID)
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < len(items); i += batchSize {
			end := i + batchSize
			if end > len(items) {
				end = len(items)
			}
			select {
			case <-ctx.Done():
				return
			case jobs <- items[i:end]:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var failed []string
	for err := range results {
		if err != nil {
			failed = append(failed, err.Error())
		}
	}

	r.logger.Info("使用次数批量写入完成",
		zap.Duration("总耗时", time.Since(startedAt)),
		zap.Int("总批次数", totalBatches),
		zap.Int("失败批次数", len(failed)),
	)
	if len(failed) > 0 {
		return fmt.Errorf("批量写入使用次数时发生错误 (%d / %d 个批次失败): %s", len(failed), totalBatches, strings.Join(failed, "; "))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("批量写入被取消: %w", ctx.Err())
	}
	return nil
}

// processBatch 在一个事务内逐条累加，单条 UPDATE 使用 usage_count + ? 在各方言下都成立
func (r *listingBatchRepository) processBatch(ctx context.Context, batch []usageDelta, workerID int) error {
	started := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range batch {
			if err := tx.Model(&entities.Listing{}).
				Where("id = ?", item.ID).
				UpdateColumn("usage_count", gorm.Expr("usage_count + ?", item.Delta)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("批次写入失败",
			zap.Int("workerID", workerID),
			zap.Int("batchSize", len(batch)),
			zap.Duration("db耗时", time.Since(started)),
			zap.Error(err),
		)
		return fmt.Errorf("worker %d 处理批次 (大小 %d) 失败: %w", workerID, len(batch), err)
	}
	r.logger.Debug("批次写入成功", zap.Int("workerID", workerID), zap.Int("batchSize", len(batch)))
	return nil
}
