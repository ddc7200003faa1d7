// Package client holds the HTTP clients for the two external services: the
// clustering/photo backend and the hosted database API. Nothing here retries;
// every failure is surfaced to the screen that triggered the call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/models"
)

// allowedCaptureExts mirrors the image types the backend accepts; checking
// locally avoids a doomed round trip
var allowedCaptureExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".heic": true,
	".heif": true,
}

// Backend talks to the clustering/photo service
type Backend struct {
	baseURL string
	hc      *http.Client
}

// NewBackend creates a backend client. Trailing slashes in baseURL are
// tolerated.
func NewBackend(baseURL string, log *zap.Logger) *Backend {
	return &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      newHTTPClient(log),
	}
}

// BaseURL returns the configured backend address
func (b *Backend) BaseURL() string {
	return b.baseURL
}

// Heatmap fetches the pre-clustered point list. The response must be a JSON
// array; anything else is a failure. Points are returned raw — filtering and
// intensity normalization belong to the viewers.
func (b *Backend) Heatmap(ctx context.Context) ([]models.HeatPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/heatmap", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build heatmap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.hc.Do(req)
	if err != nil {
		return nil, b.connectivityError("/heatmap", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var points []models.HeatPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("invalid data format received")
	}
	return points, nil
}

// UploadCapture sends the image at path as multipart form data to /capture.
// On a non-success response the body's detail field, when present, becomes
// the error message.
func (b *Backend) UploadCapture(ctx context.Context, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedCaptureExts[ext] {
		return fmt.Errorf("unsupported file type: %s", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to read photo: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/capture", &body)
	if err != nil {
		return fmt.Errorf("failed to build capture request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := b.hc.Do(req)
	if err != nil {
		return b.connectivityError("/capture", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	detail := struct {
		Detail string `json:"detail"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil && detail.Detail != "" {
		return fmt.Errorf("%s", detail.Detail)
	}
	return fmt.Errorf("unable to upload image")
}

// connectivityError rewrites transport failures into a message naming the
// target so the user can tell which service is unreachable
func (b *Backend) connectivityError(endpoint string, err error) error {
	return fmt.Errorf("unable to reach %s%s, ensure the backend server is running and accessible: %w",
		b.baseURL, endpoint, err)
}
