package credential

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore adapts a Redis database to the Store interface for hosts that
// distribute shared tool state across processes. It only reads; populating
// and rotating the keys is the host's job.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger *zap.Logger
}

// NewRedisStore creates a read-only store over the given client. All keys
// are prefixed with prefix, which may be empty.
func NewRedisStore(client redis.UniversalClient, prefix string, log *zap.Logger) *RedisStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: log,
	}
}

// Get implements Store. A missing key and a failed read both report "not
// present" so that resolution falls through to the next source; failures
// are logged for diagnosis.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("shared store read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}
	return val, true
}
