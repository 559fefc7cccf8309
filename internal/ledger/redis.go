package ledger

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisLedger struct {
	client *redis.Client
	key    string
}

// NewRedis stores fingerprints in the Redis set named key, so several
// pipeline instances can share one ledger.
func NewRedis(client *redis.Client, key string) Ledger {
	return &redisLedger{client: client, key: key}
}

func (l *redisLedger) Seen(ctx context.Context, fingerprint string) (bool, error) {
	ok, err := l.client.SIsMember(ctx, l.key, fingerprint).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember: %w", err)
	}
	return ok, nil
}

func (l *redisLedger) Mark(ctx context.Context, fingerprint string) error {
	if err := l.client.SAdd(ctx, l.key, fingerprint).Err(); err != nil {
		return fmt.Errorf("redis sadd: %w", err)
	}
	return nil
}
