// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory page cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: net/http client with browser headers and a redirect limit
// - http/colly: colly collector exposed as an HTTP client
// - storage/sqlite: Website record store
// - logger/structured: logrus logger with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "page:https://example.com", markup, 30*time.Minute)
//	value, err := cache.Get(ctx, "page:https://example.com")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"}, logger)
//
// # HTTP Client
//
// Both transports make exactly one attempt per call; fallback belongs to the retriever:
//
//	client := standard.NewStandardHTTPClient(15*time.Second, 5)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLogger("info", "json", os.Stdout)
//	logger.Info("Retrieved page", map[string]interface{}{
//	    "url":  "https://example.com",
//	    "path": "direct",
//	})
package infrastructure
