package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/enums"
)

// ModerationHistory 审核历史，每次审核动作一条
type ModerationHistory struct {
	ID             uint64       `gorm:"primaryKey"`
	ListingID      uint64       `gorm:"not null;index"`
	Listing        Listing      `gorm:"foreignKey:ListingID"`
	// 外部审核决策可能不带管理员，此时为 NULL
	AdminID        *uint64      `gorm:"index"`
	Admin          *User        `gorm:"foreignKey:AdminID"`
	Action         string       `gorm:"type:varchar(20);not null"`
	PreviousStatus enums.Status `gorm:"type:int;not null"`
	NewStatus      enums.Status `gorm:"type:int;not null"`
	Comment        string       `gorm:"type:varchar(500)"`
	CreatedAt      time.Time    `gorm:"index"`
}
