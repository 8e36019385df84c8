// Package events 定义服务发布和消费的 Kafka 消息结构 (JSON)。
package events

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"
)

// ListingData 工具的核心字段
type ListingData struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	CategoryID  uint64 `json:"category_id"`
	AuthorID    uint64 `json:"author_id"`
	Description string `json:"description"`
}

// ListingSubmittedEvent 用户提交新工具，等待审核
type ListingSubmittedEvent struct {
	EventID   string      `json:"event_id"`
	Timestamp time.Time   `json:"timestamp"`
	Listing   ListingData `json:"listing"`
}

// ModerationData 一次审核的结果
type ModerationData struct {
	ListingID   uint64       `json:"listing_id"`
	AuthorID    uint64       `json:"author_id"`
	Status      enums.Status `json:"status"`
	ModeratorID uint64       `json:"moderator_id"`
	Reason      string       `json:"reason,omitempty"`
}

// ListingModeratedEvent 审核结果广播
type ListingModeratedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	ModerationData
}

// ModerationDecisionEvent 外部审核系统投递的审核决定
type ModerationDecisionEvent struct {
	EventID     string `json:"event_id"`
	ListingID   uint64 `json:"listing_id"`
	ModeratorID uint64 `json:"moderator_id"`
	Approved    bool   `json:"approved"`
	Reason      string `json:"reason"`
}
