package config

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret" json:"-" yaml:"secret"`
	Issuer      string `mapstructure:"issuer" json:"issuer" yaml:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours" json:"expire_hours" yaml:"expire_hours"` // 默认 168 (7 天)
}
