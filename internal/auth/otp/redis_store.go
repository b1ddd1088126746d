package otp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed pending-verification store.
// Records are written without a TTL so that expired codes stay visible
// until the cleanup endpoint removes them.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "otp:",
	}
}

func (s *RedisStore) key(email, purpose string) string {
	return s.prefix + purpose + ":" + email
}

func (s *RedisStore) Find(ctx context.Context, email, purpose string) (*Record, error) {
	val, err := s.client.Get(ctx, s.key(email, purpose)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var r Record
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return nil, fmt.Errorf("otp: failed to unmarshal: %w", err)
	}

	return &r, nil
}

// Upsert is a single SET: concurrent registrations for the same email
// cannot duplicate a record, the last writer wins.
func (s *RedisStore) Upsert(ctx context.Context, r *Record) error {
	if r.Email == "" || r.Purpose == "" {
		return fmt.Errorf("otp: missing email or purpose")
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("otp: failed to marshal: %w", err)
	}

	return s.client.Set(ctx, s.key(r.Email, r.Purpose), data, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, email, purpose string) error {
	return s.client.Del(ctx, s.key(email, purpose)).Err()
}

func (s *RedisStore) DeleteAll(ctx context.Context, email string) (int, error) {
	iter := s.client.Scan(ctx, 0, s.prefix+"*:"+email, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	n, err := s.client.Del(ctx, keys...).Result()
	return int(n), err
}
