package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Category 工具分类
type Category struct {
	entities.BaseModel

	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`
	Icon        string `gorm:"type:varchar(50)"`
	Color       string `gorm:"type:varchar(20)"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`
}
