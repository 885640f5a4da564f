package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/teamsync/internal/domain/repositories"
	"github.com/johnquangdev/teamsync/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisStore implements the StateStore boundary on Redis. Entities live under
// "<collection>:<id>" keys; ID indexes are Redis lists, so AppendIndex maps to
// RPUSH, which is atomic and removes the read-modify-write hazard on the index.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed state store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func entityKey(collection, id string) string {
	return fmt.Sprintf("%s:%s", collection, id)
}

func indexKey(index string) string {
	return fmt.Sprintf("index:%s", index)
}

// Get returns the raw value for collection/id
func (s *RedisStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	value, err := s.client.Get(ctx, entityKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set writes the raw value for collection/id
func (s *RedisStore) Set(ctx context.Context, collection, id string, value []byte) error {
	return s.client.Set(ctx, entityKey(collection, id), value, 0).Err()
}

// AppendIndex atomically appends ids to the named index
func (s *RedisStore) AppendIndex(ctx context.Context, index string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return s.client.RPush(ctx, indexKey(index), values...).Err()
}

// Index returns all ids in the named index, in append order
func (s *RedisStore) Index(ctx context.Context, index string) ([]string, error) {
	ids, err := s.client.LRange(ctx, indexKey(index), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return ids, nil
}
