package config

// UsageSyncConfig 包含使用次数同步任务相关的配置
type UsageSyncConfig struct {
	// BatchSize 是将 Redis 中累计的使用次数增量写回数据库时，每个事务处理的工具数量。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 是并发处理批次的 worker 数量。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 是 SCAN 命令的 COUNT 提示值。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}

// RankingCacheConfig 用户排行榜缓存配置
type RankingCacheConfig struct {
	// TTLSeconds 缓存有效期 (秒)
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`
	// WarmLimits 定时任务预热的榜单长度，例如 [10, 50]
	WarmLimits []int `mapstructure:"warmLimits" json:"warmLimits" yaml:"warmLimits"`
}
