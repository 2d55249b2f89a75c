package cache

import (
	"context"
	"time"
)

const (
	DriverLRU   = "lru"
	DriverRedis = "redis"
)

// Cache is a byte cache with a fixed entry TTL chosen at construction.
type Cache interface {
	// Get reports ok=false on a miss. err is only set when the backend failed.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Config selects and sizes the backend.
type Config struct {
	Driver        string
	Size          int
	TTL           time.Duration
	Prefix        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
