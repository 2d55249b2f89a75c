package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSize = 256
	defaultTTL  = 24 * time.Hour
)

type lruCache struct {
	entries *expirable.LRU[string, []byte]
}

// NewLRU returns an in-process cache holding at most size entries.
func NewLRU(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &lruCache{entries: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *lruCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries.Get(key)
	return v, ok, nil
}

func (c *lruCache) Set(_ context.Context, key string, value []byte) error {
	c.entries.Add(key, value)
	return nil
}
