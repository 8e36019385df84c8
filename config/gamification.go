package config

// GamificationConfig 积分规则
type GamificationConfig struct {
	ListingApprovedPoints int64 `mapstructure:"listing_approved_points" json:"listing_approved_points" yaml:"listing_approved_points"`
	ReviewCreatedPoints   int64 `mapstructure:"review_created_points" json:"review_created_points" yaml:"review_created_points"`
}

// WithDefaults 返回填充了默认值的副本 (审核通过 50 分，发表评价 10 分)
func (g GamificationConfig) WithDefaults() GamificationConfig {
	if g.ListingApprovedPoints <= 0 {
		g.ListingApprovedPoints = 50
	}
	if g.ReviewCreatedPoints <= 0 {
		g.ReviewCreatedPoints = 10
	}
	return g
}
