package storage

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type NewRedisClientParams struct {
	Host           string
	Port           string
	Password       string
	TracingEnabled bool
}

// NewRedisClient connects and pings redis.
func NewRedisClient(ctx context.Context, params NewRedisClientParams) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Host, params.Port),
		Password: params.Password,
		DB:       0,
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Debugf("redis ping: %s", rdbStatus.Val())

	return rdb, nil
}

// RedisStore keeps the slot under a single redis key. The client is owned by
// the caller and not closed here.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, slot string) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		key: slot,
	}
}

func (s *RedisStore) Load(ctx context.Context) (_ *progression.UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	stats, decodeErr := Decode(data)
	if decodeErr != nil {
		log.Warnf("ignoring redis save slot %s: %s", s.key, decodeErr)
		return nil, nil
	}
	return stats, nil
}

func (s *RedisStore) Save(ctx context.Context, stats progression.UserStats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := Encode(stats)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, string(data), 0).Err(); err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return nil
}
