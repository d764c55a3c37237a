package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "kalaverse:cart:"

// RedisStore holds each owner's cart under a single key, serialized the
// same way as the file store. Carts have no TTL; an abandoned cart
// survives until its owner clears it.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Load(ctx context.Context, owner string) ([]Line, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+owner).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("corrupt cart payload: %w", err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, owner string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKeyPrefix+owner, raw, 0).Err()
}
