package session

import (
	"context"
	"errors"
	"time"

	"minisocial/internal/core/session"
)

// ErrNotFound is returned when the session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// SessionStore is the outbound port for server-side session state.
type SessionStore interface {
	Save(ctx context.Context, s *session.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}
