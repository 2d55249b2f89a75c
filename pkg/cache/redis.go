package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis wraps an existing client. Keys are stored as prefix+key.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.redis get: %w", err)
	}
	return v, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.redis set: %w", err)
	}
	return nil
}

// New builds the backend named by cfg.Driver. The redis client is pinged
// once so a bad address fails at startup. The returned close func is never nil.
func New(ctx context.Context, cfg Config) (Cache, func() error, error) {
	switch cfg.Driver {
	case "", DriverLRU:
		return NewLRU(cfg.Size, cfg.TTL), func() error { return nil }, nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, func() error { return nil }, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return NewRedis(client, cfg.Prefix, cfg.TTL), client.Close, nil
	default:
		return nil, func() error { return nil }, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
