package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv は必須環境変数をテスト用に設定します。
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "accounts")
	t.Setenv("JWT_SECRET", "test-signing-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL, "default token TTL is one hour")
	assert.True(t, cfg.RunMigrations)
	assert.Empty(t, cfg.RedisHost, "redis is optional")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, "redis.internal", cfg.RedisHost)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "accounts")
	// t.Setenv registers the restore, then the variable is removed for this test
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()

	assert.Error(t, err, "startup must fail fast without a signing secret")
}
