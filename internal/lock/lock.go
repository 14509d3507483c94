// Package lock implements a Redis lease lock: SET NX with an expiry, released
// only by the holder.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("lock is held by another owner")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

type Locker struct {
	client *redis.Client
}

func New(client *redis.Client) *Locker {
	return &Locker{client: client}
}

type Lease struct {
	client *redis.Client
	key    string
	token  string
}

// TryAcquire takes key for ttl without blocking. The lease expires on its own
// if the holder dies.
func (l *Locker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAcquired
	}
	return &Lease{client: l.client, key: key, token: token}, nil
}

// Release deletes the key if this lease still owns it.
func (l *Lease) Release(ctx context.Context) error {
	return l.client.Eval(ctx, unlockScript, []string{l.key}, l.token).Err()
}
