package report

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/b1s/threatlink-client/internal/models"
)

// Validation failures block the submission client-side, before any network
// call, each with its own user-facing message.
var (
	ErrMissingCategory  = errors.New("select a threat type before submitting")
	ErrMissingDirection = errors.New("capture a direction before submitting")
	ErrMissingLocation  = errors.New("device location is required to submit a report")
)

// Inserter is the slice of the persistence client the service needs
type Inserter interface {
	InsertReport(ctx context.Context, report models.Report) (string, error)
}

// Service validates a draft, attaches location and timestamps, and performs
// the single insert against the external store
type Service struct {
	persist  Inserter
	drafts   *DraftStore
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a submission service over the given persistence client
// and draft store
func NewService(persist Inserter, drafts *DraftStore) *Service {
	return &Service{
		persist:  persist,
		drafts:   drafts,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Submit sends the current draft. On success the draft is cleared and the
// confirmation code is returned; on external failure the store's message
// comes back unchanged and the draft stays intact for retry.
func (s *Service) Submit(ctx context.Context, loc *models.GeoLocation) (string, error) {
	draft := s.drafts.Draft()

	if draft.SelectedThreat == "" {
		return "", ErrMissingCategory
	}
	if draft.Direction == "" {
		return "", ErrMissingDirection
	}
	if loc == nil || !loc.Valid() {
		return "", ErrMissingLocation
	}

	now := s.now().UTC()
	payload := models.Report{
		Type:        draft.SelectedThreat.WireType(),
		Lat:         loc.Latitude,
		Lon:         loc.Longitude,
		Direction:   draft.Direction,
		Description: draft.Description,
		Timestamp:   now.UnixMilli(),
		CreatedAt:   now.Format(time.RFC3339),
	}
	if err := s.validate.Struct(payload); err != nil {
		return "", fmt.Errorf("report payload invalid: %w", err)
	}

	id, err := s.persist.InsertReport(ctx, payload)
	if err != nil {
		return "", err
	}

	s.drafts.Reset()

	if id == "" {
		// Store returned no representation; fall back to a short opaque code
		id = fallbackCode()
	}
	return id, nil
}

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// fallbackCode generates a 6-character code. Not guaranteed unique — it only
// stands in when the store does not echo the inserted row.
func fallbackCode() string {
	buf := make([]byte, 6)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			buf[i] = codeAlphabet[0]
			continue
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}
