package constant

// 定时任务调度表达式 (robfig/cron 标准 5 段格式)
const (
	// SyncUsageCountInterval 每分钟把 Redis 中累计的使用次数写回数据库
	SyncUsageCountInterval = "*/1 * * * *"

	// RefreshRankingInterval 每 5 分钟预热用户排行榜缓存
	RefreshRankingInterval = "*/5 * * * *"
)
