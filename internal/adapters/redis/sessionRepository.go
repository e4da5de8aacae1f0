package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"minisocial/internal/core/session"
	sessionPort "minisocial/internal/ports/session"
)

// SessionRepositoryRedis stores sessions as JSON under "session:<id>" with a TTL.
type SessionRepositoryRedis struct {
	Client *redis.Client
}

func NewSessionRepositoryRedis(client *redis.Client) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{Client: client}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(s.ID), payload, ttl).Err()
}

func (r *SessionRepositoryRedis) Find(ctx context.Context, id string) (*session.Session, error) {
	payload, err := r.Client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sessionPort.ErrNotFound
		}
		return nil, err
	}

	var s session.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.Client.Del(ctx, sessionKey(id)).Err()
}
