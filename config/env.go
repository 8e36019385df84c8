package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv 加载 .env 文件到进程环境变量。文件不存在不算错误。
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnvOverrides 用环境变量覆盖敏感配置，避免把密钥写进 YAML。
func (c *WikiConfig) ApplyEnvOverrides() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTConfig.Secret = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DatabaseConfig.Write.DSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.DatabaseConfig.Driver = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisConfig.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.RedisConfig.Password = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTPConfig.Password = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTPConfig.Port = port
		}
	}
	if v := os.Getenv("COS_SECRET_ID"); v != "" {
		c.COSConfig.SecretID = v
	}
	if v := os.Getenv("COS_SECRET_KEY"); v != "" {
		c.COSConfig.SecretKey = v
	}
}
