package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can use "90s"/"1h" notation.
type Duration time.Duration

// UnmarshalYAML implements custom YAML unmarshaling for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", str, err)
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	ListenAddress string   `yaml:"listen_address"`
	ReadTimeout   Duration `yaml:"read_timeout"`
	WriteTimeout  Duration `yaml:"write_timeout"`
	IdleTimeout   Duration `yaml:"idle_timeout"`
}

// UpstreamConfig configures the noticeboard REST API client.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	// Timeout bounds a single upstream request; the cache layer itself
	// enforces no timeouts.
	Timeout Duration `yaml:"timeout"`
	// AuthToken, when set, is passed through as a bearer token. Token
	// retrieval and refresh belong to the caller.
	AuthToken string `yaml:"auth_token"`
}

// RedisConfig configures the persistent store tier.
type RedisConfig struct {
	Enabled        bool     `yaml:"enabled"`
	ConnectTimeout Duration `yaml:"connect_timeout"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	SendTimeout    Duration `yaml:"send_timeout"`
	PoolSize       int      `yaml:"pool_size"`
	MaxIdleTimeout Duration `yaml:"max_idle_timeout"`
}

// BigCacheConfig configures the in-process accelerator tier.
type BigCacheConfig struct {
	Enabled    bool     `yaml:"enabled"`
	SizeMB     int      `yaml:"size_mb"`
	LifeWindow Duration `yaml:"life_window"`
}

// TTLConfig sets the freshness window per cache namespace. Unset namespaces
// inherit Default.
type TTLConfig struct {
	Default      Duration `yaml:"default"`
	NoticeList   Duration `yaml:"notice_list"`
	NoticeDetail Duration `yaml:"notice_detail"`
	Attachments  Duration `yaml:"attachments"`
	Leave        Duration `yaml:"leave"`
}

// CacheConfig groups cache-layer settings.
type CacheConfig struct {
	// Disabled swaps the store for a no-op; every lookup goes upstream.
	Disabled bool `yaml:"disabled"`
	// EnablePropagation backfills the accelerator tier on deep-tier hits.
	EnablePropagation bool      `yaml:"enable_propagation"`
	TTL               TTLConfig `yaml:"ttl"`
}

// Config represents the main configuration structure
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Redis    RedisConfig    `yaml:"redis"`
	BigCache BigCacheConfig `yaml:"bigcache"`
	Cache    CacheConfig    `yaml:"cache"`
}

// LoadConfig loads and validates configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = ":8090"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(30 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(30 * time.Second)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}

	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = Duration(10 * time.Second)
	}

	if c.Redis.ConnectTimeout == 0 {
		c.Redis.ConnectTimeout = Duration(5 * time.Second)
	}
	if c.Redis.ReadTimeout == 0 {
		c.Redis.ReadTimeout = Duration(time.Second)
	}
	if c.Redis.SendTimeout == 0 {
		c.Redis.SendTimeout = Duration(time.Second)
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.MaxIdleTimeout == 0 {
		c.Redis.MaxIdleTimeout = Duration(5 * time.Minute)
	}

	if c.BigCache.SizeMB == 0 {
		c.BigCache.SizeMB = 64
	}
	if c.BigCache.LifeWindow == 0 {
		c.BigCache.LifeWindow = Duration(time.Hour)
	}

	if c.Cache.TTL.Default == 0 {
		c.Cache.TTL.Default = Duration(time.Hour)
	}
	if c.Cache.TTL.NoticeList == 0 {
		c.Cache.TTL.NoticeList = c.Cache.TTL.Default
	}
	if c.Cache.TTL.NoticeDetail == 0 {
		c.Cache.TTL.NoticeDetail = c.Cache.TTL.Default
	}
	if c.Cache.TTL.Attachments == 0 {
		c.Cache.TTL.Attachments = c.Cache.TTL.Default
	}
	if c.Cache.TTL.Leave == 0 {
		c.Cache.TTL.Leave = c.Cache.TTL.Default
	}
}
