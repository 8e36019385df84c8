package entities

import "time"

// Activity 用户动态，供个人主页和管理后台展示
type Activity struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index:idx_activity_user_date,priority:1"`
	User        User   `gorm:"foreignKey:UserID"`
	Type        string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:varchar(500)"`
	Points      int64  `gorm:"not null;default:0"`
	ReferenceID *uint64
	CreatedAt   time.Time `gorm:"index:idx_activity_user_date,priority:2;index"`
}

// PointTransaction 积分流水
type PointTransaction struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index"`
	Points      int64  `gorm:"not null"`
	Type        string `gorm:"type:varchar(50);not null"`
	ReferenceID *uint64
	Description string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"index"`
}
