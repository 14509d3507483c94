// Package cache stores JSON-encoded read models in Redis with a fixed TTL.
// Owners invalidate keys explicitly when the underlying rows change.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Redis) key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get decodes the cached value into dest. A miss returns false and no error.
func (c *Redis) Get(ctx context.Context, id int64, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		zap.L().Warn("dropping undecodable cache entry", zap.String("key", c.key(id)), zap.Error(err))
		return false, c.client.Del(ctx, c.key(id)).Err()
	}
	return true, nil
}

func (c *Redis) Set(ctx context.Context, id int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(id), raw, c.ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

// Nop is used when Redis is not configured; every read misses.
type Nop struct{}

func (Nop) Get(context.Context, int64, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, int64, any) error         { return nil }
func (Nop) Invalidate(context.Context, ...int64) error    { return nil }
