package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"safepath/internal/domain"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	// PlaceSearchCacheTTL is generous: the hospital directory changes rarely.
	PlaceSearchCacheTTL = 10 * time.Minute
)

const placeSearchPrefix = "cache:places:"

// GetPlaceSearch retrieves cached place candidates for a query.
// A cache miss returns (nil, nil).
func (s *CacheStore) GetPlaceSearch(ctx context.Context, query string) ([]domain.Place, error) {
	data, err := s.client.Get(ctx, placeSearchPrefix+query).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// SetPlaceSearch caches the candidates for a query.
func (s *CacheStore) SetPlaceSearch(ctx context.Context, query string, places []domain.Place) error {
	data, err := json.Marshal(places)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, placeSearchPrefix+query, data, PlaceSearchCacheTTL).Err()
}
