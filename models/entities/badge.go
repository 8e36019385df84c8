package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Badge 可用积分兑换的勋章
type Badge struct {
	entities.BaseModel

	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`
	ImageURL    string `gorm:"type:varchar(500)"`
	Cost        int64  `gorm:"not null;default:0;index"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// UserBadge 用户已获得的勋章
type UserBadge struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_badge,priority:1"`
	BadgeID   uint64    `gorm:"not null;uniqueIndex:idx_user_badge,priority:2"`
	Badge     Badge     `gorm:"foreignKey:BadgeID"`
	CreatedAt time.Time // 获得时间
}
