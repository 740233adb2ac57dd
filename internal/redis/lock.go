package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireSubmitLock attempts to acquire the booking-submission lock for a
// user. A held lock means a confirmation is already in flight (e.g. a
// double-tap); the second attempt must not create another booking.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireSubmitLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:submit:%s", userID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseSubmitLock releases the submission lock for the given user.
func (s *LockStore) ReleaseSubmitLock(ctx context.Context, userID string) error {
	key := fmt.Sprintf("lock:submit:%s", userID)

	return s.client.Del(ctx, key).Err()
}
