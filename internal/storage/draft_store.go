package storage

import (
	"encoding/json"
	"fmt"

	"github.com/b1s/threatlink-client/internal/models"
)

// DraftKey is the fixed cache key mirroring the in-progress report draft
const DraftKey = "threatlink:draft"

// DraftStore mirrors the in-progress draft so a killed session can restore it
type DraftStore struct {
	cache *Cache
}

// NewDraftStore creates a draft store over the cache
func NewDraftStore(cache *Cache) *DraftStore {
	return &DraftStore{cache: cache}
}

// Load returns the mirrored draft, or nil when absent or unreadable
func (s *DraftStore) Load() (*models.ReportDraft, error) {
	raw, ok, err := s.cache.Get(DraftKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var draft models.ReportDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, nil
	}
	return &draft, nil
}

// Save mirrors the draft into the cache
func (s *DraftStore) Save(draft models.ReportDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.cache.Set(DraftKey, string(raw))
}

// Clear removes the mirrored draft
func (s *DraftStore) Clear() error {
	return s.cache.Delete(DraftKey)
}
