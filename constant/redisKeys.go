package constant

import "time"

// Redis Key 相关常量
const (
	// ListingUsagePrefix 工具使用次数增量计数器的 Key 前缀。
	// 示例 Key: "wiki:listing_usage:42"，值为自上次同步以来的增量。
	// Redis 类型: String
	ListingUsagePrefix = "wiki:listing_usage:"

	// UserRankingPrefix 用户积分排行榜缓存的 Key 前缀，后缀为榜单长度。
	// 示例 Key: "wiki:user_ranking:10"，值为 JSON 数组。
	// Redis 类型: String
	UserRankingPrefix = "wiki:user_ranking:"
)

// DefaultRankingTTL 排行榜缓存默认有效期
const DefaultRankingTTL = 2 * time.Minute
