package report

import (
	"testing"

	"github.com/b1s/threatlink-client/internal/models"
)

func TestDraftUpdateMergesPartialChanges(t *testing.T) {
	store := NewDraftStore(nil)

	store.Update(models.DraftUpdate{SelectedThreat: threatPtr(models.ThreatDrone)})
	store.Update(models.DraftUpdate{Direction: strPtr("Northeast")})
	merged := store.Update(models.DraftUpdate{Description: strPtr("two quadcopters")})

	if merged.SelectedThreat != models.ThreatDrone {
		t.Errorf("category lost across merges: %q", merged.SelectedThreat)
	}
	if merged.Direction != "Northeast" {
		t.Errorf("direction lost across merges: %q", merged.Direction)
	}
	if merged.Description != "two quadcopters" {
		t.Errorf("description not applied: %q", merged.Description)
	}
}

func TestDraftUpdateNilFieldsUntouched(t *testing.T) {
	store := NewDraftStore(nil)
	store.Update(models.DraftUpdate{
		SelectedThreat: threatPtr(models.ThreatExplosion),
		Direction:      strPtr("South"),
		Description:    strPtr("smoke to the south"),
	})

	// An empty update must not clobber anything
	got := store.Update(models.DraftUpdate{})
	want := models.ReportDraft{
		SelectedThreat: models.ThreatExplosion,
		Direction:      "South",
		Description:    "smoke to the south",
	}
	if got != want {
		t.Errorf("empty update changed the draft: got %+v, want %+v", got, want)
	}
}

func TestDraftUpdateCanClearWithEmptyValues(t *testing.T) {
	store := NewDraftStore(nil)
	store.Update(models.DraftUpdate{Description: strPtr("initial text")})

	got := store.Update(models.DraftUpdate{Description: strPtr("")})
	if got.Description != "" {
		t.Errorf("explicit empty string should clear the field, got %q", got.Description)
	}
}

func TestDraftReset(t *testing.T) {
	store := NewDraftStore(nil)
	store.Update(models.DraftUpdate{
		SelectedThreat: threatPtr(models.ThreatSuspicious),
		Direction:      strPtr("West"),
	})

	store.Reset()
	if !store.Draft().Empty() {
		t.Errorf("reset should empty the draft, got %+v", store.Draft())
	}
}
