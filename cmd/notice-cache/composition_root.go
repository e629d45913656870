package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"notice-cache/internal/config"
	"notice-cache/internal/httpserver"
	"notice-cache/internal/interfaces"
	"notice-cache/internal/notices"
	"notice-cache/internal/remote"
	"notice-cache/internal/store/l1"
	"notice-cache/internal/store/l2"
	"notice-cache/internal/store/layered"
	"notice-cache/internal/store/memory"
	"notice-cache/internal/store/noop"
)

// CompositionRoot holds all application dependencies and provides a
// centralized place for dependency injection and service initialization.
type CompositionRoot struct {
	Config *config.Config
	Logger *zap.Logger

	// Store tiers
	Accelerator *l1.BigCacheStore // nil when disabled
	RedisStore  *l2.RedisStore    // nil when disabled or unreachable
	Store       interfaces.Store

	// Services
	Source     interfaces.NoticeSource
	Service    *notices.Service
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and wires all application dependencies.
//
// Initialization order:
//  1. Logger (needed by all other components)
//  2. Configuration
//  3. Store tiers (Redis/memory authoritative, optional BigCache accelerator)
//  4. Upstream client and noticeboard service
//  5. HTTP server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.initStore(); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("NOTICE_CACHE_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/notice_cache.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// initStore builds the key-value store: Redis when enabled and reachable
// (memory otherwise), with an optional BigCache accelerator layered in
// front.
func (r *CompositionRoot) initStore() error {
	if r.Config.Cache.Disabled {
		r.Logger.Warn("Caching disabled, every lookup goes upstream")
		r.Store = noop.New()
		return nil
	}

	authoritative := r.initAuthoritativeStore()

	if !r.Config.BigCache.Enabled {
		r.Logger.Info("BigCache accelerator disabled")
		r.Store = authoritative
		return nil
	}

	accelerator, err := l1.New(r.Config.BigCache.SizeMB, r.Config.BigCache.LifeWindow.Std(), r.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize BigCache accelerator: %w", err)
	}
	r.Accelerator = accelerator
	r.Logger.Info("BigCache accelerator initialized", zap.Int("size_mb", r.Config.BigCache.SizeMB))

	r.Store = layered.New(
		[]interfaces.Store{accelerator, authoritative},
		r.Logger,
		r.Config.Cache.EnablePropagation,
	)
	return nil
}

// initAuthoritativeStore connects Redis when enabled, falling back to the
// in-memory store when it is disabled or unreachable.
func (r *CompositionRoot) initAuthoritativeStore() interfaces.Store {
	if !r.Config.Redis.Enabled {
		r.Logger.Info("Redis disabled, using in-memory store")
		return memory.New()
	}

	redisURL := GetRedisURL(r.Logger)
	client, err := l2.NewRedisClient(&r.Config.Redis, redisURL, r.Logger)
	if err != nil {
		r.Logger.Warn("Failed to connect to Redis, falling back to in-memory store",
			zap.String("redis_url", redisURL),
			zap.Error(err))
		return memory.New()
	}

	r.RedisStore = l2.New(&r.Config.Redis, client, r.Logger)
	r.Logger.Info("Redis store initialized", zap.String("redis_url", redisURL))
	return r.RedisStore
}

// initServices wires the upstream client, the noticeboard service and the
// HTTP server
func (r *CompositionRoot) initServices() {
	r.Source = remote.NewClient(&r.Config.Upstream, r.Logger)
	r.Service = notices.NewService(r.Store, r.Source, r.Config.Cache.TTL, r.Logger)
	r.HTTPServer = httpserver.NewServer(r.Service, &r.Config.Server, r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errs []error

	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	if r.Accelerator != nil {
		if err := r.Accelerator.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close accelerator store: %w", err))
		}
	}

	if r.RedisStore != nil {
		if err := r.RedisStore.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis store: %w", err))
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
