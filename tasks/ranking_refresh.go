package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/models/vo"
)

// RankingRefresher 重建并缓存指定长度的排行榜，由 service.UserService 实现
type RankingRefresher interface {
	RefreshRanking(ctx context.Context, limit int) ([]*vo.RankingEntryVO, error)
}

// RankingRefreshTask 定时预热常用长度的用户排行榜缓存
type RankingRefreshTask struct {
	refresher RankingRefresher
	limits    []int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewRankingRefreshTask(refresher RankingRefresher, limits []int, logger *zap.Logger) *RankingRefreshTask {
	task := &RankingRefreshTask{
		refresher: refresher,
		limits:    limits,
		cron:      cron.New(),
		logger:    logger,
	}
	task.startCronJob()
	return task
}

func (t *RankingRefreshTask) startCronJob() {
	schedule := constant.RefreshRankingInterval
	entryID, err := t.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		t.refreshAll(ctx)
	})
	if err != nil {
		t.logger.Fatal("添加排行榜预热 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("排行榜预热定时任务已启动", zap.String("schedule", schedule), zap.Ints("limits", t.limits), zap.Uint("cronEntryID", uint(entryID)))
}

// refreshAll 某个长度失败不影响其余长度，返回成功的数量
func (t *RankingRefreshTask) refreshAll(ctx context.Context) int {
	refreshed := 0
	for _, limit := range t.limits {
		if limit <= 0 {
			continue
		}
		if _, err := t.refresher.RefreshRanking(ctx, limit); err != nil {
			t.logger.Error("预热排行榜失败", zap.Int("limit", limit), zap.Error(err))
			continue
		}
		refreshed++
	}
	return refreshed
}

func (t *RankingRefreshTask) Stop() context.Context {
	t.logger.Info("正在停止排行榜预热定时任务...")
	return t.cron.Stop()
}
