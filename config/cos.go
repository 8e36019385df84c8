package config

// COSConfig 腾讯云 COS 配置，用于上传工具 Logo
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 可选，CDN 或自定义域名
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	// MaxLogoSize 允许上传的最大字节数
	MaxLogoSize int64 `mapstructure:"max_logo_size" json:"max_logo_size" yaml:"max_logo_size"`
}

// Enabled 判断 COS 关键字段是否齐全
func (c COSConfig) Enabled() bool {
	return c.SecretID != "" && c.SecretKey != "" && c.BucketName != "" && c.AppID != "" && c.Region != ""
}
