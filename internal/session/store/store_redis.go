package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paynet/internal/session/models"
	"paynet/pkg/platform/sentinel"
)

const (
	sessionKeyPrefix = "console_session:"

	// defaultSessionTTL applies when the caller cannot derive one from the token.
	defaultSessionTTL = 12 * time.Hour
)

// RedisStore shares console sessions between BFF replicas.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) sessionKey(key string) string {
	return sessionKeyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (*models.Record, error) {
	data, err := s.client.Get(ctx, s.sessionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session record: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get session record: %w", err)
	}

	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w: %w", sentinel.ErrMalformed, err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, rec models.Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if err := s.client.Set(ctx, s.sessionKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.sessionKey(key)).Err(); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
