package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/mq/events"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// Moderator 执行审核决定，由 service.AdminService 实现
type Moderator interface {
	Moderate(ctx context.Context, decision dto.ModerationDecision) (*vo.ModerationResultVO, error)
}

// ModerationDecisionHandler 消费外部审核系统投递的决定
type ModerationDecisionHandler struct {
	moderator Moderator
	logger    *zap.Logger
}

func NewModerationDecisionHandler(moderator Moderator, logger *zap.Logger) *ModerationDecisionHandler {
	return &ModerationDecisionHandler{moderator: moderator, logger: logger}
}

// Handle 无法解析的消息、工具不存在、已审核和缺少拒绝原因都只记录日志，不再重试
func (h *ModerationDecisionHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ModerationDecisionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("反序列化审核决定失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}
	if event.ListingID == 0 {
		h.logger.Warn("审核决定缺少 listing_id，已丢弃", zap.String("event_id", event.EventID))
		return nil
	}

	result, err := h.moderator.Moderate(ctx, dto.ModerationDecision{
		ListingID:   event.ListingID,
		ModeratorID: event.ModeratorID,
		Approved:    event.Approved,
		Reason:      event.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			h.logger.Warn("审核决定对应的工具不存在", zap.String("event_id", event.EventID), zap.Uint64("listing_id", event.ListingID))
			return nil
		case errors.Is(err, myErrors.ErrAlreadyModerated), errors.Is(err, myErrors.ErrReasonRequired):
			h.logger.Warn("审核决定被忽略", zap.String("event_id", event.EventID), zap.Uint64("listing_id", event.ListingID), zap.Error(err))
			return nil
		}
		return fmt.Errorf("处理审核决定(listing %d)失败: %w", event.ListingID, err)
	}

	h.logger.Info("已应用外部审核决定",
		zap.String("event_id", event.EventID),
		zap.Uint64("listing_id", result.ListingID),
		zap.Int64("awarded_points", result.AwardedPoints))
	return nil
}
