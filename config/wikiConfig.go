package config

import "github.com/Xushengqwer/go-common/config"

// WikiConfig 是服务的聚合配置，由 core.LoadConfig 从 YAML 文件加载。
type WikiConfig struct {
	ZapConfig          config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig      config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig       config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig       config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	DatabaseConfig     DatabaseConfig       `mapstructure:"databaseConfig" json:"databaseConfig" yaml:"databaseConfig"`
	RedisConfig        RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig        KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig          COSConfig            `mapstructure:"logoCosConfig" json:"logoCosConfig" yaml:"logoCosConfig"`
	JWTConfig          JWTConfig            `mapstructure:"jwtConfig" json:"jwtConfig" yaml:"jwtConfig"`
	SMTPConfig         SMTPConfig           `mapstructure:"smtpConfig" json:"smtpConfig" yaml:"smtpConfig"`
	GamificationConfig GamificationConfig   `mapstructure:"gamificationConfig" json:"gamificationConfig" yaml:"gamificationConfig"`
	UsageSyncConfig    UsageSyncConfig      `mapstructure:"usageSyncConfig" json:"usageSyncConfig" yaml:"usageSyncConfig"`
	RankingCacheConfig RankingCacheConfig   `mapstructure:"rankingCacheConfig" json:"rankingCacheConfig" yaml:"rankingCacheConfig"`
}
