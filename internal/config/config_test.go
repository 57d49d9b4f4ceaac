package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, found, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.False(t, found)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Minute, cfg.TagCacheTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfig_EnvFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	env := "PORT=9090\nJWT_SECRET=from-file\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("JWT_SECRET", "from-env")

	cfg, found, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, found)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "debug", cfg.LogLevel)
}
