package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

// Cache stores JSON documents in redis. A Cache built from a nil client is a
// no-op that always misses.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetRaw returns the stored bytes and whether the key was found.
func (c *Cache) GetRaw(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.FromContext(ctx).Debug().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	return val, true
}

// Get decodes the stored document into dest.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := c.GetRaw(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("cache entry undecodable")
		return false
	}
	return true
}

// Set encodes value as JSON. ttl 0 means no expiry.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Delete evicts keys, logging rather than returning failures.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
