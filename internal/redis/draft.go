package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"safepath/internal/domain"
	"safepath/internal/draft"
)

// DraftTTL bounds how long an abandoned wizard draft survives.
const DraftTTL = 24 * time.Hour

var _ draft.Store = (*DraftStore)(nil)

const draftKeyPrefix = "draft:"

// DraftStore persists booking drafts in Redis, one per user.
type DraftStore struct {
	client *redis.Client
}

// NewDraftStore creates a new DraftStore.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

// Get returns the user's draft, or (nil, nil) when none exists.
func (s *DraftStore) Get(ctx context.Context, userID string) (*domain.Draft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var d domain.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save stores the draft, replacing any existing one and refreshing the TTL.
func (s *DraftStore) Save(ctx context.Context, userID string, d *domain.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKeyPrefix+userID, data, DraftTTL).Err()
}

// Clear removes the draft. Deleting an absent key is a no-op in Redis, which
// keeps clearing idempotent.
func (s *DraftStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, draftKeyPrefix+userID).Err()
}
