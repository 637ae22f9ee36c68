package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mockleague/league-api/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps session records in Redis under a per-session key with a
// TTL, so an expired session simply disappears.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

// Get loads the session for sid. A missing or expired key maps to
// domain.ErrNoSession.
func (s *SessionStore) Get(ctx context.Context, sid string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Set stores the session under sid for the given lifetime.
func (s *SessionStore) Set(ctx context.Context, sid string, sess *domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sid), raw, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Delete removes the session for sid. Deleting an absent session is not an
// error.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
