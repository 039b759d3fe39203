package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const maxPingAttempts = 10

type RedisService struct {
	rdb *redis.Client
	log logrus.FieldLogger
}

// NewRedisService accepts either a redis:// URL or a plain host:port address.
func NewRedisService(addr string, log logrus.FieldLogger) *RedisService {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}
	return &RedisService{
		rdb: redis.NewClient(opts),
		log: log,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

// WaitReady pings Redis with exponential backoff until it answers or ctx is done.
func (a *RedisService) WaitReady(ctx context.Context) error {
	backoff := 250 * time.Millisecond
	for attempt := 1; attempt <= maxPingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := a.rdb.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			return nil
		}
		a.log.WithError(err).WithField("attempt", attempt).Warn("redis ping failed")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
	return fmt.Errorf("redis not reachable after %d attempts", maxPingAttempts)
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
