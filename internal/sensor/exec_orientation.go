package sensor

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ExecOrientationProvider subscribes to orientation events by running a
// platform command (termux-sensor style) that streams one JSON object per
// line: {"heading": 123.4} or {"alpha": 236.6}.
type ExecOrientationProvider struct {
	Command string

	mu     sync.Mutex
	cmd    *exec.Cmd
	events chan OrientationEvent
	done   chan struct{}
}

// NewExecOrientationProvider creates a provider around the given command
func NewExecOrientationProvider(command string) *ExecOrientationProvider {
	return &ExecOrientationProvider{Command: command}
}

// Subscribe starts the stream. A second subscription without Close is an error.
func (p *ExecOrientationProvider) Subscribe() (<-chan OrientationEvent, error) {
	if p.Command == "" {
		return nil, ErrUnsupported
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil {
		return nil, errors.New("orientation stream already active")
	}

	parts := strings.Fields(p.Command)
	cmd := exec.Command(parts[0], parts[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open orientation stream: %w", err)
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrUnsupported
		}
		return nil, fmt.Errorf("failed to start orientation provider: %w", err)
	}

	events := make(chan OrientationEvent)
	done := make(chan struct{})
	p.cmd = cmd
	p.events = events
	p.done = done

	go func() {
		defer close(events)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			var ev OrientationEvent
			raw := struct {
				Heading *float64 `json:"heading"`
				Alpha   *float64 `json:"alpha"`
			}{}
			if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
				continue
			}
			ev.CompassHeading = raw.Heading
			ev.Alpha = raw.Alpha
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	return events, nil
}

// Close stops the stream and reaps the provider process
func (p *ExecOrientationProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd == nil {
		return nil
	}

	close(p.done)
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	err := p.cmd.Wait()
	p.cmd = nil
	p.events = nil
	p.done = nil
	if err != nil && !strings.Contains(err.Error(), "killed") {
		return fmt.Errorf("orientation provider exited: %w", err)
	}
	return nil
}
