package entities

// AllModels 返回需要自动迁移的实体，顺序满足外键依赖
func AllModels() []interface{} {
	return []interface{}{
		&Level{},
		&User{},
		&Category{},
		&Listing{},
		&Review{},
		&Favorite{},
		&Badge{},
		&UserBadge{},
		&ModerationHistory{},
		&Activity{},
		&PointTransaction{},
	}
}
