// Package report owns the draft lifecycle and the submission flow.
package report

import (
	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/storage"
)

// DraftStore holds the in-progress report across screen navigation. The
// store itself is the durable handle: navigating to the capture screen and
// back carries no draft payload. Every change is mirrored into the cache so
// a killed session can restore it.
type DraftStore struct {
	draft  models.ReportDraft
	mirror *storage.DraftStore
}

// NewDraftStore creates a draft store, restoring any mirrored draft. A nil
// mirror keeps the store purely in-memory.
func NewDraftStore(mirror *storage.DraftStore) *DraftStore {
	s := &DraftStore{mirror: mirror}
	if mirror != nil {
		if saved, err := mirror.Load(); err == nil && saved != nil {
			s.draft = *saved
		}
	}
	return s
}

// Draft returns the current draft
func (s *DraftStore) Draft() models.ReportDraft {
	return s.draft
}

// Update shallow-merges a partial change: nil fields leave the current
// values untouched. Returns the merged draft.
func (s *DraftStore) Update(update models.DraftUpdate) models.ReportDraft {
	if update.SelectedThreat != nil {
		s.draft.SelectedThreat = *update.SelectedThreat
	}
	if update.Direction != nil {
		s.draft.Direction = *update.Direction
	}
	if update.Description != nil {
		s.draft.Description = *update.Description
	}
	s.persist()
	return s.draft
}

// Reset clears the draft back to empty. Called only after a successful
// submission.
func (s *DraftStore) Reset() {
	s.draft = models.ReportDraft{}
	if s.mirror != nil {
		_ = s.mirror.Clear()
	}
}

func (s *DraftStore) persist() {
	if s.mirror != nil {
		// Mirror failures must not block composing; the draft stays usable
		// in memory
		_ = s.mirror.Save(s.draft)
	}
}
