package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON read cache over Redis. New returns nil when the
// server is unreachable and callers treat a nil *Cache as "caching
// disabled", so the API keeps working without Redis.
type Cache struct {
	client *redis.Client
}

func New(addr string, password string, db int) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, caching disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("redis connected", "addr", addr)
	return &Cache{client: client}
}

// Get unmarshals the cached value into dest and reports whether the key
// was present. Decode failures count as a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

// Set stores value as JSON with the given TTL, best effort.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *Cache) Close() {
	if c != nil {
		_ = c.client.Close()
	}
}
