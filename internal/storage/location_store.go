package storage

import (
	"encoding/json"
	"fmt"

	"github.com/b1s/threatlink-client/internal/models"
)

// LocationKey is the fixed cache key holding the last known coordinate
const LocationKey = "threatlink:last-location"

// LocationStore persists the last known device location so a returning user
// does not need a fresh fix
type LocationStore struct {
	cache *Cache
}

// NewLocationStore creates a location store over the cache
func NewLocationStore(cache *Cache) *LocationStore {
	return &LocationStore{cache: cache}
}

// Load returns the cached location. Absent or malformed values yield
// (nil, nil): they are ignored, never an error the caller must handle.
func (s *LocationStore) Load() (*models.GeoLocation, error) {
	raw, ok, err := s.cache.Get(LocationKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var loc models.GeoLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, nil
	}
	if !loc.Valid() {
		return nil, nil
	}
	return &loc, nil
}

// Save writes the location under the fixed key
func (s *LocationStore) Save(loc models.GeoLocation) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	return s.cache.Set(LocationKey, string(raw))
}
