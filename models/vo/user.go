package vo

import (
	"time"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// UserVO 登录/注册后返回的用户信息
type UserVO struct {
	ID              uint64 `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Points          int64  `json:"points"`
	AvailablePoints int64  `json:"available_points"`
	Level           int    `json:"level"`
	Avatar          string `json:"avatar"`
}

// AuthResponse 注册和登录的响应
type AuthResponse struct {
	Token string `json:"token"`
	User  UserVO `json:"user"`
}

// ProfileVO 当前登录用户的个人资料
type ProfileVO struct {
	UserVO
	Bio          string        `json:"bio"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActiveAt *time.Time    `json:"last_active_at,omitempty"`
	LevelInfo    *LevelVO      `json:"level_info,omitempty"`
	Badges       []UserBadgeVO `json:"badges"`
}

// UserStatsVO 公开主页上的统计
type UserStatsVO struct {
	ApprovedListings int64 `json:"approved_listings"`
	ActiveReviews    int64 `json:"active_reviews"`
}

// PublicProfileVO 公开主页，不包含邮箱等私人信息
type PublicProfileVO struct {
	ID        uint64        `json:"id"`
	Username  string        `json:"username"`
	Avatar    string        `json:"avatar"`
	Bio       string        `json:"bio"`
	Points    int64         `json:"points"`
	Level     int           `json:"level"`
	CreatedAt time.Time     `json:"created_at"`
	LevelInfo *LevelVO      `json:"level_info,omitempty"`
	Badges    []UserBadgeVO `json:"badges"`
	Stats     UserStatsVO   `json:"stats"`
}

// RankingEntryVO 排行榜中的一行
type RankingEntryVO struct {
	Position  int      `json:"position"`
	UserID    uint64   `json:"user_id"`
	Username  string   `json:"username"`
	Avatar    string   `json:"avatar"`
	Points    int64    `json:"points"`
	Level     int      `json:"level"`
	LevelInfo *LevelVO `json:"level_info,omitempty"`
}

// AdminUserVO 管理后台的用户列表项
type AdminUserVO struct {
	UserVO
	IsActive     bool       `json:"is_active"`
	IsBanned     bool       `json:"is_banned"`
	BanReason    *string    `json:"ban_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

// ActivityVO 用户动态
type ActivityVO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Points      int64     `json:"points"`
	ReferenceID *uint64   `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserVO(u *entities.User) UserVO {
	return UserVO{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		Points:          u.Points,
		AvailablePoints: u.AvailablePoints(),
		Level:           u.Level,
		Avatar:          u.Avatar,
	}
}

func NewAdminUserVOs(users []*entities.User) []*AdminUserVO {
	out := make([]*AdminUserVO, 0, len(users))
	for _, u := range users {
		item := &AdminUserVO{
			UserVO:       NewUserVO(u),
			IsActive:     u.IsActive,
			IsBanned:     u.IsBanned,
			CreatedAt:    u.CreatedAt,
			LastActiveAt: u.LastActiveAt,
		}
		if u.BanReason.Valid {
			reason := u.BanReason.String
			item.BanReason = &reason
		}
		out = append(out, item)
	}
	return out
}

func NewActivityVOs(activities []*entities.Activity) []*ActivityVO {
	out := make([]*ActivityVO, 0, len(activities))
	for _, a := range activities {
		out = append(out, &ActivityVO{
			ID:          a.ID,
			UserID:      a.UserID,
			Username:    a.User.Username,
			Type:        a.Type,
			Description: a.Description,
			Points:      a.Points,
			ReferenceID: a.ReferenceID,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}
