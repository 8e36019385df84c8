package entities

import "time"

// Favorite 用户收藏。取消收藏为物理删除，因此不嵌入带软删除的 BaseModel。
type Favorite struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_favorite_user_listing,priority:1"`
	ListingID uint64    `gorm:"not null;uniqueIndex:idx_favorite_user_listing,priority:2"`
	Listing   Listing   `gorm:"foreignKey:ListingID"`
	CreatedAt time.Time `gorm:"index"`
}
