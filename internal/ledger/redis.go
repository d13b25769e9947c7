package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// casScript performs the compare-and-swap atomically inside Redis.
// KEYS[1] = ledger key
// ARGV[1] = expected current value ("" means key must be absent)
// ARGV[2] = new value
var casScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == false then
    current = ""
end
if current ~= ARGV[1] then
    return 0
end
redis.call("SET", KEYS[1], ARGV[2])
return 1
`)

// RedisConfig holds connection settings for the Redis ledger backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type redisClient struct {
	rdb *redis.Client
}

// NewRedis returns a ledger backed by a Redis instance. It implements
// [ConditionalClient]; the swap runs as a Lua script so the
// compare-and-set is atomic server-side.
func NewRedis(cfg RedisConfig) *redisClient { //nolint:revive
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisClient{rdb: rdb}
}

func (r *redisClient) IsAvailable(ctx context.Context) (bool, error) {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *redisClient) GetData(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %q: %w", ErrUnavailable, key, err)
	}
	return value, nil
}

func (r *redisClient) SetData(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %q: %w", ErrUnavailable, key, err)
	}
	return nil
}

func (r *redisClient) CompareAndSwap(ctx context.Context, key string, expect, value []byte) (bool, error) {
	res, err := casScript.Run(ctx, r.rdb, []string{key}, string(expect), string(value)).Int()
	if err != nil {
		return false, fmt.Errorf("%w: redis cas %q: %w", ErrUnavailable, key, err)
	}
	return res == 1, nil
}
