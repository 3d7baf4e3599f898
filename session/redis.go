package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"clinic-portal/models"
)

// RedisStore keeps sessions in Redis. Session keys carry no TTL: a stored
// role stays valid until logout clears it.
type RedisStore struct {
	client   *redis.Client
	flashTTL time.Duration
}

func NewRedis(addr string, flashTTL time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, flashTTL: flashTTL}, nil
}

func sessionKey(sid string) string { return "session:" + sid }
func flashKey(sid string) string   { return "flash:" + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) (*models.Session, error) {
	if sid == "" {
		return nil, nil
	}
	raw, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", sid, err)
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sid), raw, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid), flashKey(sid)).Err()
}

func (s *RedisStore) SetFlash(ctx context.Context, sid string, f Flash) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, flashKey(sid), raw, s.flashTTL).Err()
}

func (s *RedisStore) PopFlash(ctx context.Context, sid string) (*Flash, error) {
	raw, err := s.client.GetDel(ctx, flashKey(sid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var f Flash
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, err
	}
	return &f, nil
}
