package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

// Redis is a Store backed by a Redis server. Keys are used verbatim and never expire.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client. Close closes the client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// NewRedisFromURL parses url, connects and pings the server.
func NewRedisFromURL(ctx context.Context, url string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		//nolint:errcheck,gosec // the ping error is the one worth reporting
		rdb.Close()
		return nil, err
	}

	return NewRedis(rdb), nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
