package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records and reverse-index sets in redis,
// relying on server-side key expiry for the TTL semantics.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Save(ctx context.Context, s Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "sessionStore.Save.Marshal")
	}
	return r.client.Set(ctx, recordKey(s.ID), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, recordKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, errors.Wrap(err, "sessionStore.Get.Unmarshal")
	}
	s.ID = sessionID
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, recordKey(sessionID)).Err()
}

func (r *RedisStore) AddToIndex(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	key := indexKey(userID)
	if err := r.client.SAdd(ctx, key, sessionID).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *RedisStore) RemoveFromIndex(ctx context.Context, userID, sessionID string) error {
	return r.client.SRem(ctx, indexKey(userID), sessionID).Err()
}

func (r *RedisStore) IndexMembers(ctx context.Context, userID string) ([]string, error) {
	return r.client.SMembers(ctx, indexKey(userID)).Result()
}

func (r *RedisStore) ClearIndex(ctx context.Context, userID string) error {
	return r.client.Del(ctx, indexKey(userID)).Err()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
