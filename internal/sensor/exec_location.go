package sensor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/b1s/threatlink-client/internal/models"
)

// ExecLocationProvider resolves a position fix by running a platform command
// (termux-location, CoreLocationCLI -json, gpspipe and friends) that prints a
// JSON object with latitude/longitude fields.
type ExecLocationProvider struct {
	Command string
	Timeout time.Duration
}

// NewExecLocationProvider creates a provider around the given command
func NewExecLocationProvider(command string, timeout time.Duration) *ExecLocationProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ExecLocationProvider{Command: command, Timeout: timeout}
}

// Resolve runs the command once with a bounded wait and parses its output
func (p *ExecLocationProvider) Resolve(ctx context.Context) (models.GeoLocation, error) {
	if p.Command == "" {
		return models.GeoLocation{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	parts := strings.Fields(p.Command)
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return models.GeoLocation{}, ErrUnsupported
		}
		if ctx.Err() == context.DeadlineExceeded {
			return models.GeoLocation{}, fmt.Errorf("position fix timed out after %s", p.Timeout)
		}
		if isPermissionOutput(out) {
			return models.GeoLocation{}, ErrPermissionDenied
		}
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return models.GeoLocation{}, fmt.Errorf("unable to retrieve location: %s", msg)
	}

	return ParseLocationOutput(out)
}

// ParseLocationOutput decodes a provider command's JSON output
func ParseLocationOutput(out []byte) (models.GeoLocation, error) {
	var loc models.GeoLocation
	if err := json.Unmarshal(out, &loc); err != nil {
		return models.GeoLocation{}, fmt.Errorf("unreadable location output: %w", err)
	}
	if !loc.Valid() {
		return models.GeoLocation{}, fmt.Errorf("location output out of range: %.4f, %.4f", loc.Latitude, loc.Longitude)
	}
	return loc, nil
}

func isPermissionOutput(out []byte) bool {
	text := strings.ToLower(string(out))
	return strings.Contains(text, "permission") || strings.Contains(text, "denied") ||
		strings.Contains(text, "not allowed")
}
