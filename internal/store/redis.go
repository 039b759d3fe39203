package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// RedisStore keeps the serialized cart under a single Redis key.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

// Load returns an empty cart when the key does not exist.
func (s *RedisStore) Load(ctx context.Context) ([]models.Product, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", s.key)
	}
	return decode(val)
}

func (s *RedisStore) Save(ctx context.Context, cart []models.Product) error {
	data, err := encode(cart)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", s.key)
	}
	return nil
}
