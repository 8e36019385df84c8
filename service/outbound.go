package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/mq/events"
	"github.com/Xushengqwer/wiki_service/notify"
	"github.com/Xushengqwer/wiki_service/repo/redis"
)

// ListingEventPublisher 发布工具生命周期事件，由 *producer.KafkaProducer 实现。
// 未配置 Kafka 时传 nil。
type ListingEventPublisher interface {
	SendListingSubmittedEvent(ctx context.Context, data events.ListingData) error
	SendListingModeratedEvent(ctx context.Context, data events.ModerationData) error
}

// ModerationNotifier 通知作者审核结果，由 *notify.MailNotifier 实现。未配置时传 nil。
type ModerationNotifier interface {
	NotifyModeration(notice notify.ModerationNotice)
}

const publishTimeout = 10 * time.Second

// publishAsync 在后台发送事件，请求本身不等待 Kafka
func publishAsync(logger *zap.Logger, name string, listingID uint64, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			logger.Error("发送 Kafka 事件失败", zap.String("event", name), zap.Uint64("listingID", listingID), zap.Error(err))
			return
		}
		logger.Debug("Kafka 事件已发送", zap.String("event", name), zap.Uint64("listingID", listingID))
	}()
}

// invalidateRanking 积分或封禁状态变化后清除排行榜缓存，失败只记录日志
func invalidateRanking(ctx context.Context, cache redis.RankingCache, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("清除排行榜缓存失败", zap.Error(err))
	}
}
