package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Review 用户对工具的评价
// - 每个用户对同一工具只能有一条评价 (包括已删除的)，由唯一索引保证。
// - 删除为软删除: IsActive 置为 false。
type Review struct {
	entities.BaseModel

	ListingID uint64  `gorm:"not null;uniqueIndex:idx_review_user_listing,priority:2;index"`
	Listing   Listing `gorm:"foreignKey:ListingID"`
	UserID    uint64  `gorm:"not null;uniqueIndex:idx_review_user_listing,priority:1"`
	User      User    `gorm:"foreignKey:UserID"`

	Rating   int    `gorm:"not null"`
	Comment  string `gorm:"type:text"`
	IsActive bool   `gorm:"not null;default:true"`
	Edited   bool   `gorm:"not null;default:false"`
}
