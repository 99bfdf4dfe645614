// ABOUTME: Main entry point for the Shades API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/DTI-Technologies/shades-webapp/api"
	"github.com/DTI-Technologies/shades-webapp/api/handlers"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/pipeline"
	"github.com/DTI-Technologies/shades-webapp/core/retrieval"
	"github.com/DTI-Technologies/shades-webapp/core/services"
	"github.com/DTI-Technologies/shades-webapp/core/website"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/cache/memory"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/cache/redis"
	sqlitecache "github.com/DTI-Technologies/shades-webapp/infrastructure/cache/sqlite"
	collyhttp "github.com/DTI-Technologies/shades-webapp/infrastructure/http/colly"
	stdhttp "github.com/DTI-Technologies/shades-webapp/infrastructure/http/standard"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/logger/structured"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/storage/sqlite"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

func main() {
	// A missing .env file is fine; the process environment still applies
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			log.Fatalf("Failed to load configuration file: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewFromConfig(cfg.Log)
	logger.Info("Starting Shades API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"transport":  cfg.Retrieval.Transport,
		"ai_enabled": cfg.AI.Enabled(),
	})

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: newHTTPClient(cfg.Retrieval),
		Logger:     logger,
	}

	// Create services
	retriever := retrieval.NewService(deps, cfg.Retrieval)
	opts := []pipeline.Option{
		pipeline.WithLogoColors(services.NewLogoColorService(deps)),
	}
	if cfg.AI.Enabled() {
		opts = append(opts, pipeline.WithStyleGenerator(services.NewAIStyleGenerator(cfg.AI, logger)))
		logger.Info("AI style generation enabled", map[string]interface{}{
			"model": cfg.AI.Model,
		})
	}
	brandPipeline := pipeline.NewService(deps, retriever, opts...)

	store, err := sqlite.NewWebsiteStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open website store: %v", err)
	}
	defer store.Close()
	websiteService := website.NewService(store, logger)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})

	handlers.NewBrandHandler(brandPipeline, logger).RegisterRoutes(humaAPI)
	handlers.NewWebsiteHandler(brandPipeline, websiteService).RegisterRoutes(humaAPI)

	// Write timeout covers the whole fallback chain plus extraction
	writeTimeout := cfg.Retrieval.OverallTimeout + 15*time.Second
	if cfg.Retrieval.OverallTimeout <= 0 {
		writeTimeout = 2 * time.Minute
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache selects the cache backend, falling back to memory when it cannot be opened
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis, logger)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, closer(redisCache, logger)
	case "sqlite":
		sqliteCache, err := sqlitecache.NewSQLiteCache(cfg.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, closer(sqliteCache, logger)
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheFromConfig(cfg.Memory), noop
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// newHTTPClient selects the transport used by every retrieval path
func newHTTPClient(cfg config.RetrievalConfig) interfaces.HTTPClient {
	// Per-attempt deadlines come from the request context; this is an upper bound
	timeout := cfg.AlternateTimeout
	if cfg.DirectTimeout > timeout {
		timeout = cfg.DirectTimeout
	}

	if cfg.Transport == "colly" {
		return collyhttp.NewCollyHTTPClient(timeout, cfg.MaxRedirects)
	}
	return stdhttp.NewStandardHTTPClient(timeout, cfg.MaxRedirects)
}

func init() {
	fmt.Println(`
   _____ __              __
  / ___// /_  ____ _____/ /__  _____
  \__ \/ __ \/ __ '/ __  / _ \/ ___/
 ___/ / / / / /_/ / /_/ /  __(__  )
/____/_/ /_/\__,_/\__,_/\___/____/
	`)
}
