package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notice_cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: ":9000"
  read_timeout: 15s
upstream:
  base_url: "https://intranet.example.com/api/v1"
  timeout: 5s
  auth_token: "token-123"
redis:
  enabled: true
  connect_timeout: 2s
  pool_size: 20
bigcache:
  enabled: true
  size_mb: 128
  life_window: 30m
cache:
  enable_propagation: true
  ttl:
    default: 2h
    leave: 30m
`)

	cfg, err := LoadConfig(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.ListenAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, "https://intranet.example.com/api/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, "token-123", cfg.Upstream.AuthToken)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Redis.ConnectTimeout.Std())
	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.True(t, cfg.BigCache.Enabled)
	assert.Equal(t, 128, cfg.BigCache.SizeMB)
	assert.Equal(t, 30*time.Minute, cfg.BigCache.LifeWindow.Std())
	assert.True(t, cfg.Cache.EnablePropagation)
	assert.Equal(t, 2*time.Hour, cfg.Cache.TTL.Default.Std())
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL.Leave.Std())
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  base_url: "https://intranet.example.com/api/v1"
`)

	cfg, err := LoadConfig(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Server.ListenAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout.Std())
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout.Std())
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 64, cfg.BigCache.SizeMB)
	assert.Equal(t, time.Hour, cfg.Cache.TTL.Default.Std())
}

func TestLoadConfig_NamespaceTTLsInheritDefault(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  base_url: "https://intranet.example.com/api/v1"
cache:
  ttl:
    default: 45m
    leave: 10m
`)

	cfg, err := LoadConfig(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Cache.TTL.NoticeList.Std())
	assert.Equal(t, 45*time.Minute, cfg.Cache.TTL.NoticeDetail.Std())
	assert.Equal(t, 45*time.Minute, cfg.Cache.TTL.Attachments.Std())
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL.Leave.Std())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop())
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [broken")

	_, err := LoadConfig(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  base_url: "https://intranet.example.com/api/v1"
  timeout: "not-a-duration"
`)

	_, err := LoadConfig(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: ":9000"
`)

	_, err := LoadConfig(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadConfig_MalformedBaseURL(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  base_url: "not a url"
`)

	_, err := LoadConfig(path, zap.NewNop())
	assert.Error(t, err)
}
