package client

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// loggingTransport tags every outgoing request with a request id and logs
// method, path, status and latency
type loggingTransport struct {
	base http.RoundTripper
	log  *zap.Logger
}

// newHTTPClient builds the http.Client shared by the API clients. Individual
// calls bound their own lifetime via context, so no client-wide timeout here.
func newHTTPClient(log *zap.Logger) *http.Client {
	return &http.Client{
		Transport: &loggingTransport{base: http.DefaultTransport, log: log},
	}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Start timer
	start := time.Now()
	requestID := uuid.NewString()
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", requestID)

	resp, err := t.base.RoundTrip(req)

	// Calculate latency
	latency := time.Since(start)

	if err != nil {
		t.log.Warn("http request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return nil, err
	}

	t.log.Info("http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", latency),
	)
	return resp, nil
}
