package config

// SMTPConfig 审核结果邮件通知配置。Host 为空时不发送邮件。
type SMTPConfig struct {
	Host     string `mapstructure:"host" json:"host" yaml:"host"`
	Port     int    `mapstructure:"port" json:"port" yaml:"port"`
	Username string `mapstructure:"username" json:"username" yaml:"username"`
	Password string `mapstructure:"password" json:"-" yaml:"password"`
	From     string `mapstructure:"from" json:"from" yaml:"from"`
}
