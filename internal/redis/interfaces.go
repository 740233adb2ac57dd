package redis

import (
	"context"
	"time"
)

// SessionStoreInterface defines the interface for session token resolution.
type SessionStoreInterface interface {
	Create(ctx context.Context, userID string) (string, error)
	GetUserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// LockStoreInterface defines the interface for submission locking.
type LockStoreInterface interface {
	AcquireSubmitLock(ctx context.Context, userID string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, userID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ SessionStoreInterface = (*SessionStore)(nil)
	_ LockStoreInterface    = (*LockStore)(nil)
)
