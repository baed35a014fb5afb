package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mredis"
)

// RedisRepository provides an interface for redis-backed caching.
//
//go:generate mockgen --destination=redis.mock.go --package=redis . RedisRepository
type RedisRepository interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Del(ctx context.Context, key string) error
}

// RedisConsumerRepository is a redis implementation of the cache repository.
type RedisConsumerRepository struct {
	conn *mredis.RedisConnection
}

// NewConsumerRedis returns a new instance of RedisConsumerRepository using the given redis connection.
func NewConsumerRedis(rc *mredis.RedisConnection) *RedisConsumerRepository {
	r := &RedisConsumerRepository{
		conn: rc,
	}

	return r
}

// Set stores a value with a time-to-live.
func (rr *RedisConsumerRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "redis.set")
	defer span.End()

	rds, err := rr.conn.GetClient(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get redis client", err)

		return err
	}

	if err := rds.Set(ctx, key, value, ttl).Err(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to set key", err)

		return err
	}

	return nil
}

// Get retrieves a value, reporting whether the key was present.
func (rr *RedisConsumerRepository) Get(ctx context.Context, key string) (string, bool, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "redis.get")
	defer span.End()

	rds, err := rr.conn.GetClient(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get redis client", err)

		return "", false, err
	}

	value, err := rds.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}

		mopentelemetry.HandleSpanError(&span, "Failed to get key", err)

		return "", false, err
	}

	return value, true, nil
}

// Del removes a key.
func (rr *RedisConsumerRepository) Del(ctx context.Context, key string) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "redis.del")
	defer span.End()

	rds, err := rr.conn.GetClient(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get redis client", err)

		return err
	}

	if err := rds.Del(ctx, key).Err(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete key", err)

		return err
	}

	return nil
}
