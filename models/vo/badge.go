package vo

import (
	"time"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// BadgeVO 勋章
type BadgeVO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Cost        int64  `json:"cost"`
}

// UserBadgeVO 用户已获得的勋章
type UserBadgeVO struct {
	ID         uint64    `json:"id"`
	ObtainedAt time.Time `json:"obtained_at"`
	Badge      BadgeVO   `json:"badge"`
}

// RedeemBadgeVO 兑换结果
type RedeemBadgeVO struct {
	Badge           BadgeVO `json:"badge"`
	AvailablePoints int64   `json:"available_points"`
}

// LevelVO 等级信息
type LevelVO struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Insignia  string `json:"insignia"`
	MinPoints int64  `json:"min_points"`
	Benefits  string `json:"benefits"`
}

func NewBadgeVO(b *entities.Badge) BadgeVO {
	return BadgeVO{ID: b.ID, Name: b.Name, Description: b.Description, ImageURL: b.ImageURL, Cost: b.Cost}
}

func NewBadgeVOs(badges []*entities.Badge) []BadgeVO {
	out := make([]BadgeVO, 0, len(badges))
	for _, b := range badges {
		out = append(out, NewBadgeVO(b))
	}
	return out
}

func NewUserBadgeVOs(grants []*entities.UserBadge) []UserBadgeVO {
	out := make([]UserBadgeVO, 0, len(grants))
	for _, g := range grants {
		out = append(out, UserBadgeVO{ID: g.ID, ObtainedAt: g.CreatedAt, Badge: NewBadgeVO(&g.Badge)})
	}
	return out
}

// NewLevelVO 等级为 nil 时返回 nil
func NewLevelVO(l *entities.Level) *LevelVO {
	if l == nil {
		return nil
	}
	return &LevelVO{Level: l.Level, Name: l.Name, Insignia: l.Insignia, MinPoints: l.MinPoints, Benefits: l.Benefits}
}

func NewLevelVOs(levels []*entities.Level) []*LevelVO {
	out := make([]*LevelVO, 0, len(levels))
	for _, l := range levels {
		out = append(out, NewLevelVO(l))
	}
	return out
}
