package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$fakehash")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "content/posts", cfg.PostsDir)
	assert.Equal(t, "content/jobs.json", cfg.JobsFile)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.LoginRateLimit)
	assert.Equal(t, time.Minute, cfg.LoginRateWindow)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOGIN_RATE_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.LoginRateLimit)
}

func TestLoadRequiredValues(t *testing.T) {
	for _, missing := range []string{"JWT_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH"} {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")
			_, err := Load()
			assert.ErrorContains(t, err, missing)
		})
	}
}

func TestLoadIgnoresUnparsableOptionalValues(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("LOGIN_RATE_LIMIT", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.LoginRateLimit)
}
