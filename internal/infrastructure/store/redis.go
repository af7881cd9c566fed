package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultConnectTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with
// a ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisTokenStore keeps the token slot in Redis, for deployments where
// the client profile is shared across hosts. SET and DEL are atomic, so
// the slot is never observed half-written.
type RedisTokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTokenStore wraps an existing client. A zero ttl keeps the token
// until logout.
func NewRedisTokenStore(client *redis.Client, key string, ttl time.Duration) *RedisTokenStore {
	if key == "" {
		key = "marketclient:token"
	}
	return &RedisTokenStore{client: client, key: key, ttl: ttl}
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token store: redis get: %w", err)
	}
	return val, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("token store: redis set: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("token store: redis del: %w", err)
	}
	return nil
}
