package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
jwt:
  secret: test-secret
storage:
  local_path: `+filepath.Join(t.TempDir(), "archive")+`
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 60, cfg.Scheduler.MaxSessionDuration)
	assert.Equal(t, 15, cfg.Scheduler.MinBreak)
	assert.Equal(t, 20, cfg.Scheduler.EventWindow)
	assert.Equal(t, 7, cfg.Scheduler.BurnoutWindow)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Empty(t, cfg.Log.Level)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.PlanCacheTTL())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigPath)
	assert.DirExists(t, cfg.Storage.LocalPath)
}

func TestLoadConfig_FileValues(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: test-secret
  expire_hours: 2
storage:
  type: minio
  minio_bucket: plans
scheduler:
  max_session_duration: 120
  min_break: 30
  plan_cache_ttl_hours: 6
cors:
  allowed_origins: ["http://a.test"]
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "plans", cfg.Storage.MinioBucket)
	assert.Equal(t, 120, cfg.Scheduler.MaxSessionDuration)
	assert.Equal(t, 30, cfg.Scheduler.MinBreak)
	assert.Equal(t, 6*time.Hour, cfg.Scheduler.PlanCacheTTL())
	assert.Equal(t, []string{"http://a.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
jwt:
  secret: from-file
storage:
  type: minio
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "short secret in release",
			body: "server:\n  mode: release\njwt:\n  secret: short\nstorage:\n  type: minio\n",
		},
		{
			name: "non-positive session length",
			body: "storage:\n  type: minio\nscheduler:\n  max_session_duration: 0\n",
		},
		{
			name: "negative break",
			body: "storage:\n  type: minio\nscheduler:\n  min_break: -5\n",
		},
		{
			name: "missing catalog",
			body: "storage:\n  type: minio\nscheduler:\n  catalog_path: /does/not/exist.yaml\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
