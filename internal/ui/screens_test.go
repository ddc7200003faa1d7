package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/client"
	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/report"
	"github.com/b1s/threatlink-client/internal/sensor"
	"github.com/b1s/threatlink-client/internal/storage"
)

type stubInserter struct {
	id    string
	err   error
	calls int
}

func (s *stubInserter) InsertReport(_ context.Context, _ models.Report) (string, error) {
	s.calls++
	return s.id, s.err
}

func kyiv() models.GeoLocation {
	return models.GeoLocation{Latitude: 50.4501, Longitude: 30.5234}
}

// newScreenDeps builds a fully wired Deps over a throwaway cache. Submissions
// go to ins instead of a real store.
func newScreenDeps(t *testing.T, ins report.Inserter) (Deps, *session) {
	t.Helper()
	cache, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to open test cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	log := zap.NewNop()
	drafts := report.NewDraftStore(storage.NewDraftStore(cache))
	return Deps{
		Log:         log,
		Backend:     client.NewBackend("http://localhost:8000", log),
		Submit:      report.NewService(ins, drafts),
		Drafts:      drafts,
		Locations:   storage.NewLocationStore(cache),
		LocProvider: &sensor.FakeLocationProvider{Location: kyiv()},
		Orientation: &sensor.FakeOrientationProvider{},
	}, &session{}
}

func pressKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLandingIgnoresStaleFix(t *testing.T) {
	deps, sess := newScreenDeps(t, &stubInserter{})
	m := newLandingModel(deps, sess, DefaultStyles())

	m.Update(pressKey('r'))
	if m.state != locRequesting {
		t.Fatalf("requesting a fix should enter the requesting state, got %d", m.state)
	}

	// A fix from a superseded request must change nothing
	m.Update(locationFixMsg{gen: m.gen - 1, loc: models.GeoLocation{Latitude: 1, Longitude: 1}})
	if m.state != locRequesting || m.location != nil {
		t.Fatalf("stale fix was applied: state=%d location=%+v", m.state, m.location)
	}

	// The matching fix lands normally, unconfirmed
	m.Update(locationFixMsg{gen: m.gen, loc: kyiv()})
	if m.state != locGranted || m.location == nil {
		t.Fatalf("current fix not applied: state=%d", m.state)
	}
	if m.confirmed || sess.confirmed {
		t.Fatal("a fresh fix must need an explicit confirm")
	}
}

func TestLandingStaleFixFromEarlierInstance(t *testing.T) {
	deps, _ := newScreenDeps(t, &stubInserter{})

	// First visit requests a fix that never arrives, user navigates away
	a := newLandingModel(deps, &session{}, DefaultStyles())
	a.Update(pressKey('r'))

	// Second visit issues its own request
	b := newLandingModel(deps, &session{}, DefaultStyles())
	b.Update(pressKey('r'))
	if a.gen == b.gen {
		t.Fatalf("fix requests from different instances must not share a generation (%d)", a.gen)
	}

	// The first instance's fix finally arrives at the second's Update
	b.Update(locationFixMsg{gen: a.gen, loc: models.GeoLocation{Latitude: 1, Longitude: 1}})
	if b.state != locRequesting || b.location != nil {
		t.Fatalf("fix from an earlier screen instance was applied: state=%d location=%+v",
			b.state, b.location)
	}
}

func TestReportSubmitNavigatesToConfirmation(t *testing.T) {
	ins := &stubInserter{id: "1387"}
	deps, sess := newScreenDeps(t, ins)
	sess.location = &models.GeoLocation{Latitude: 50.4501, Longitude: 30.5234}
	sess.photoCaptured = true

	threat := models.ThreatDrone
	direction := "North"
	deps.Drafts.Update(models.DraftUpdate{SelectedThreat: &threat, Direction: &direction})

	m := newReportModel(deps, sess, DefaultStyles(), NavPayload{})
	_, cmd := m.Update(pressKey('s'))
	if m.submitState != submitLoading || cmd == nil {
		t.Fatalf("submit should enter the loading state with a pending command")
	}

	// A second submit while one is in flight is a no-op
	if _, again := m.Update(pressKey('s')); again != nil {
		t.Fatal("concurrent submission was not blocked")
	}

	result, ok := cmd().(submitResultMsg)
	if !ok {
		t.Fatalf("submit command produced %T", cmd())
	}
	if result.err != nil {
		t.Fatalf("submission failed: %v", result.err)
	}
	if ins.calls != 1 {
		t.Fatalf("expected exactly one insert, got %d", ins.calls)
	}

	_, navCmd := m.Update(result)
	if navCmd == nil {
		t.Fatal("successful submission must navigate away")
	}
	nav, ok := navCmd().(navigateMsg)
	if !ok {
		t.Fatalf("expected a navigation message, got %T", navCmd())
	}
	if nav.screen != ScreenConfirmation || nav.payload.ReportID != "1387" {
		t.Fatalf("wrong destination: screen=%d payload=%+v", nav.screen, nav.payload)
	}
	if sess.photoCaptured {
		t.Fatal("submission should clear the session photo flag")
	}
}

func TestReportSubmitErrorStaysOnForm(t *testing.T) {
	ins := &stubInserter{err: errors.New("store down")}
	deps, sess := newScreenDeps(t, ins)
	sess.location = &models.GeoLocation{Latitude: 50.4501, Longitude: 30.5234}

	threat := models.ThreatExplosion
	direction := "West"
	deps.Drafts.Update(models.DraftUpdate{SelectedThreat: &threat, Direction: &direction})

	m := newReportModel(deps, sess, DefaultStyles(), NavPayload{})
	_, cmd := m.Update(pressKey('s'))
	_, navCmd := m.Update(cmd())
	if navCmd != nil {
		t.Fatal("a failed submission must not navigate")
	}
	if m.submitState != submitError || m.submitText != "store down" {
		t.Fatalf("store message not surfaced: state=%d text=%q", m.submitState, m.submitText)
	}
	if deps.Drafts.Draft().Empty() {
		t.Fatal("failed submission must keep the draft")
	}
}

func TestReportPhotoSurvivesCaptureRoundTrip(t *testing.T) {
	deps, sess := newScreenDeps(t, &stubInserter{})

	a := newReportModel(deps, sess, DefaultStyles(), NavPayload{})
	a.Update(photoUploadMsg{})
	if a.photoState != photoSuccess || !sess.photoCaptured {
		t.Fatalf("upload success not recorded: state=%d", a.photoState)
	}

	// Detour to the capture screen and straight back with an empty payload
	b := newReportModel(deps, sess, DefaultStyles(), NavPayload{})
	if b.photoState != photoSuccess || !b.hasPhoto {
		t.Fatalf("photo state lost across the capture round trip: state=%d", b.photoState)
	}
}

func TestCaptureFlow(t *testing.T) {
	deps, _ := newScreenDeps(t, &stubInserter{})
	m := newCaptureModel(deps, DefaultStyles())

	photo := filepath.Join(t.TempDir(), "shot.jpg")
	if err := os.WriteFile(photo, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("failed to write photo: %v", err)
	}

	// Open the camera prompt and pick a file
	m.Update(pressKey('o'))
	if !m.editing {
		t.Fatal("o should open the file prompt")
	}
	m.path.SetValue(photo)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != capturePreview || m.file != photo {
		t.Fatalf("selection should preview the file: state=%d file=%q", m.state, m.file)
	}

	// Upload: fixed delay, keys locked while pending
	_, cmd := m.Update(pressKey('o'))
	if m.state != captureUploading || cmd == nil {
		t.Fatalf("upload should enter the uploading state, got %d", m.state)
	}
	m.Update(pressKey('r'))
	if m.state != captureUploading {
		t.Fatal("keys must be ignored while uploading")
	}

	_, navCmd := m.Update(captureDoneMsg{})
	if m.state != captureSuccess {
		t.Fatalf("upload completion should succeed, got state %d", m.state)
	}
	nav, ok := navCmd().(navigateMsg)
	if !ok {
		t.Fatalf("expected navigation back to the form, got %T", navCmd())
	}
	if nav.screen != ScreenReport || !nav.payload.PhotoCaptured {
		t.Fatalf("wrong handoff: screen=%d payload=%+v", nav.screen, nav.payload)
	}
}

func TestCaptureRetakeDiscardsFile(t *testing.T) {
	deps, _ := newScreenDeps(t, &stubInserter{})
	m := newCaptureModel(deps, DefaultStyles())

	photo := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(photo, []byte("png bytes"), 0o644); err != nil {
		t.Fatalf("failed to write photo: %v", err)
	}
	m.Update(pressKey('o'))
	m.path.SetValue(photo)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(pressKey('r'))
	if m.file != "" || m.state != captureIdle || !m.editing {
		t.Fatalf("retake should discard the file and reopen the prompt: file=%q state=%d", m.file, m.state)
	}
}

func TestCaptureUnreadableFile(t *testing.T) {
	deps, _ := newScreenDeps(t, &stubInserter{})
	m := newCaptureModel(deps, DefaultStyles())

	m.Update(pressKey('o'))
	m.path.SetValue(filepath.Join(t.TempDir(), "missing.jpg"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != captureError {
		t.Fatalf("an unreadable file should error, got state %d", m.state)
	}
}
