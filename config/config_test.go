package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "USER_CACHE_TTL", "HASH_ALGORITHM", "NOTIFY_ENABLED", "RATE_LIMIT_MAX"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5*time.Minute, cfg.UserCacheTTL)
	assert.Equal(t, "bcrypt", cfg.HashAlgorithm)
	assert.True(t, cfg.NotifyEnabled)
	assert.Equal(t, 300, cfg.RateLimitMax)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("USER_CACHE_TTL", "30s")
	t.Setenv("HASH_ALGORITHM", "argon2id")
	t.Setenv("NOTIFY_ENABLED", "false")
	t.Setenv("DB_MAX_CONNS", "25")
	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.UserCacheTTL)
	assert.Equal(t, "argon2id", cfg.HashAlgorithm)
	assert.False(t, cfg.NotifyEnabled)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("USER_CACHE_TTL", "soon")
	t.Setenv("BCRYPT_COST", "high")
	t.Setenv("MAIL_SEND_ENABLED", "maybe")
	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.UserCacheTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.MailSendEnabled)
}

func TestPostgresDSN_EscapesPassword(t *testing.T) {
	cfg := &Config{DBUser: "app", DBPassword: "p@ss/word", DBHost: "db", DBPort: "5432", DBName: "users", DBSSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/users?sslmode=disable", cfg.PostgresDSN())
}

func TestSplitLists(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.com, ,https://b.com", ElasticsearchAddrs: ""}

	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigins())
	assert.Empty(t, cfg.ESAddrs())
}
