package entities

// Level 等级表，用户等级为 MinPoints 不超过其累计积分的最高等级
type Level struct {
	Level     int    `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"type:varchar(50);not null"`
	Insignia  string `gorm:"type:varchar(50)"`
	MinPoints int64  `gorm:"not null;uniqueIndex"`
	Benefits  string `gorm:"type:varchar(500)"`
}
