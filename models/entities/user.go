package entities

import (
	"database/sql"
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// User 平台用户
// - 表名: users
// - Points 为累计获得的积分，用于排行榜和等级计算；SpentPoints 为兑换勋章消耗的积分。
type User struct {
	entities.BaseModel

	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// 角色: user / admin
	Role string `gorm:"type:varchar(20);not null;default:'user'"`

	Points      int64 `gorm:"not null;default:0;index"`
	SpentPoints int64 `gorm:"not null;default:0"`
	Level       int   `gorm:"not null;default:1"`

	Avatar string `gorm:"type:varchar(500)"`
	Bio    string `gorm:"type:text"`

	IsActive  bool           `gorm:"not null;default:true"`
	IsBanned  bool           `gorm:"not null;default:false"`
	BanReason sql.NullString `gorm:"type:varchar(255)"`

	LastActiveAt *time.Time
}

// AvailablePoints 可用于兑换勋章的积分
func (u *User) AvailablePoints() int64 {
	return u.Points - u.SpentPoints
}
