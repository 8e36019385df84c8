package entities

import (
	"database/sql"
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// Listing AI 工具条目
// - 表名: listings
// - 用户提交后处于待审核状态，管理员审核后变为通过或拒绝，只能流转一次。
type Listing struct {
	entities.BaseModel

	Name        string `gorm:"type:varchar(150);not null;index"`
	Description string `gorm:"type:text;not null"`
	URL         string `gorm:"type:varchar(500);not null"`
	LogoURL     string `gorm:"type:varchar(500)"`

	CategoryID uint64   `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID"`

	AuthorID uint64 `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	// 状态: 0=待审核, 1=通过, 2=拒绝
	Status   enums.Status `gorm:"type:int;not null;default:0;index"`
	IsActive bool         `gorm:"not null;default:true"`

	// 统计字段，评价变化后在同一事务内重算
	UsageCount    int64   `gorm:"not null;default:0"`
	AverageRating float64 `gorm:"not null;default:0"`
	ReviewCount   int64   `gorm:"not null;default:0"`

	ModeratedBy     *uint64
	ModeratedAt     *time.Time
	RejectionReason sql.NullString `gorm:"type:varchar(500)"`
}
