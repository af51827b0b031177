package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// RedisDraftStore keeps drafts as plain string values with an expiry.
type RedisDraftStore struct {
	client *redis.Client
}

var _ interfaces.IDraftStore = (*RedisDraftStore)(nil)

// NewRedisClient creates a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func (s *RedisDraftStore) Get(ctx context.Context, key string) (entities.Draft, error) {
	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, draftKeyPrefix+key)
	ttlCmd := pipe.PTTL(ctx, draftKeyPrefix+key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return entities.Draft{}, err
	}

	value, err := getCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Draft{}, nil
	}
	if err != nil {
		return entities.Draft{}, err
	}

	d := entities.Draft{Key: key, Value: value}
	if ttl := ttlCmd.Val(); ttl > 0 {
		d.ExpiresAt = time.Now().UTC().Add(ttl)
	}
	return d, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) (entities.Draft, error) {
	if err := s.client.Set(ctx, draftKeyPrefix+key, value, ttl).Err(); err != nil {
		return entities.Draft{}, err
	}
	return entities.Draft{Key: key, Value: value, ExpiresAt: time.Now().UTC().Add(ttl)}, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, draftKeyPrefix+key).Err()
}
