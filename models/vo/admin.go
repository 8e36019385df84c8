package vo

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/Xushengqwer/wiki_service/models/entities"
)

// DashboardStatsVO 管理后台首页统计
type DashboardStatsVO struct {
	TotalUsers       int64 `json:"total_users"`
	PendingListings  int64 `json:"pending_listings"`
	ApprovedListings int64 `json:"approved_listings"`
	RejectedListings int64 `json:"rejected_listings"`
	TotalVisits      int64 `json:"total_visits"`
	TotalReviews     int64 `json:"total_reviews"`
}

// ModerationResultVO 审核操作结果
type ModerationResultVO struct {
	ListingID     uint64       `json:"listing_id"`
	Status        enums.Status `json:"status"`
	AwardedPoints int64        `json:"awarded_points"`
}

// ModerationHistoryVO 审核历史记录
type ModerationHistoryVO struct {
	ID             uint64       `json:"id"`
	ListingID      uint64       `json:"listing_id"`
	ListingName    string       `json:"listing_name"`
	AdminID        *uint64      `json:"admin_id"`
	AdminUsername  string       `json:"admin_username"`
	Action         string       `json:"action"`
	PreviousStatus enums.Status `json:"previous_status"`
	NewStatus      enums.Status `json:"new_status"`
	Comment        string       `json:"comment"`
	CreatedAt      time.Time    `json:"created_at"`
}

// HealthVO 健康检查
type HealthVO struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewModerationHistoryVOs(rows []*entities.ModerationHistory) []*ModerationHistoryVO {
	out := make([]*ModerationHistoryVO, 0, len(rows))
	for _, h := range rows {
		item := &ModerationHistoryVO{
			ID:             h.ID,
			ListingID:      h.ListingID,
			ListingName:    h.Listing.Name,
			AdminID:        h.AdminID,
			Action:         h.Action,
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			Comment:        h.Comment,
			CreatedAt:      h.CreatedAt,
		}
		if h.Admin != nil {
			item.AdminUsername = h.Admin.Username
		}
		out = append(out, item)
	}
	return out
}
