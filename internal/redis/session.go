package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 7 * 24 * time.Hour

const sessionKeyPrefix = "session:"

// SessionStore maps opaque session tokens to user IDs in Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create issues a new session token for the user.
func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, userID, SessionTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// GetUserID resolves a token to its user ID. An unknown or expired token
// resolves to the empty string with no error.
func (s *SessionStore) GetUserID(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

// Delete invalidates a session token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
