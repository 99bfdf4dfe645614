// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares fetched pages and logo colors across API instances with bounded TTLs

package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

// keyPrefix namespaces every key so the instance can share a Redis database
const keyPrefix = "shades:"

// pageTTLCeiling bounds page markup written without an expiry. Pages are the
// bulk of the data and a shared database must not keep them forever.
const pageTTLCeiling = 6 * time.Hour

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
	logger interfaces.Logger
}

// NewRedisCache connects to Redis and verifies the connection. logger may be nil.
func NewRedisCache(cfg config.RedisConfig, logger interfaces.Logger) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.debug("Cache miss", key, nil)
			return nil, errors.New("key not found")
		}
		c.warn("Cache read failed", key, err)
		return nil, err
	}

	c.debug("Cache hit", key, map[string]interface{}{"bytes": len(val)})
	return val, nil
}

// Set stores a value with the given TTL. Page markup with no TTL gets pageTTLCeiling.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 && strings.HasPrefix(key, interfaces.PageKeyPrefix) {
		ttl = pageTTLCeiling
	}
	if err := c.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		c.warn("Cache write failed", key, err)
		return err
	}
	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// Deleting a missing key is not an error
	return c.client.Del(ctx, keyPrefix+key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// keyKind names the cached data a key holds, for log fields
func keyKind(key string) string {
	switch {
	case strings.HasPrefix(key, interfaces.PageKeyPrefix):
		return "page"
	case strings.HasPrefix(key, interfaces.LogoColorKeyPrefix):
		return "logo_color"
	default:
		return "other"
	}
}

func (c *RedisCache) debug(msg, key string, extra map[string]interface{}) {
	if c.logger == nil {
		return
	}
	fields := map[string]interface{}{"kind": keyKind(key), "key": key}
	for k, v := range extra {
		fields[k] = v
	}
	c.logger.Debug(msg, fields)
}

func (c *RedisCache) warn(msg, key string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, map[string]interface{}{
		"kind":  keyKind(key),
		"key":   key,
		"error": err.Error(),
	})
}
