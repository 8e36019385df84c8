package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WIKI_TEST_PLACEHOLDER=1\n"), 0o600))
	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "1", os.Getenv("WIKI_TEST_PLACEHOLDER"))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_DSN", "host=db user=wiki")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_PASSWORD", "")

	cfg := WikiConfig{}
	cfg.JWTConfig.Secret = "from-yaml"
	cfg.SMTPConfig.Password = "keep-me"
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "from-env", cfg.JWTConfig.Secret)
	assert.Equal(t, "host=db user=wiki", cfg.DatabaseConfig.Write.DSN)
	assert.Equal(t, 2525, cfg.SMTPConfig.Port)
	assert.Equal(t, "keep-me", cfg.SMTPConfig.Password)
}

func TestGamificationDefaults(t *testing.T) {
	g := GamificationConfig{}.WithDefaults()
	assert.Equal(t, int64(50), g.ListingApprovedPoints)
	assert.Equal(t, int64(10), g.ReviewCreatedPoints)

	custom := GamificationConfig{ListingApprovedPoints: 80, ReviewCreatedPoints: 5}.WithDefaults()
	assert.Equal(t, int64(80), custom.ListingApprovedPoints)
	assert.Equal(t, int64(5), custom.ReviewCreatedPoints)
}
