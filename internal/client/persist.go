package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/models"
)

// Persist talks to the hosted database's REST surface. The client only ever
// inserts single report rows; reads, auth and clustering stay server-side.
type Persist struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// NewPersist creates a persistence client. The API key for the hosted
// database is a JWT; it is decoded (unverified — the service verifies it)
// purely to warn early about a malformed or expired key.
func NewPersist(baseURL, apiKey string, log *zap.Logger) *Persist {
	inspectAPIKey(apiKey, log)
	return &Persist{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      newHTTPClient(log),
	}
}

// InsertReport inserts one report and returns the store-issued row id. The
// external error message is returned verbatim so the screen can show it.
func (p *Persist) InsertReport(ctx context.Context, report models.Report) (string, error) {
	payload, err := json.Marshal([]models.Report{report})
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/rest/v1/reports", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build insert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	// Ask the store to echo the inserted row so the generated id can serve
	// as the confirmation code
	req.Header.Set("Prefer", "return=representation")

	resp, err := p.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to reach %s, check your connection: %w", p.baseURL, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s", externalMessage(body, resp.StatusCode))
	}

	var rows []struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		// Insert succeeded but no representation came back
		return "", nil
	}
	return rows[0].ID.String(), nil
}

// externalMessage pulls the store's own message out of an error body,
// falling back to the raw body, then the status code
func externalMessage(body []byte, status int) string {
	errBody := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		return errBody.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("insert rejected with HTTP %d", status)
}

func inspectAPIKey(apiKey string, log *zap.Logger) {
	if apiKey == "" {
		log.Warn("persistence api key not configured, submissions will be rejected")
		return
	}

	token, _, err := jwt.NewParser().ParseUnverified(apiKey, jwt.MapClaims{})
	if err != nil {
		log.Warn("persistence api key is not a well-formed token", zap.Error(err))
		return
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		log.Warn("persistence api key expired", zap.Time("expired_at", exp.Time))
	}
}
