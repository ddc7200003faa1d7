package sensor

import (
	"sync"

	"github.com/b1s/threatlink-client/internal/spatial"
)

// Compass tracks a live bearing from an orientation provider. The bearing is
// never persisted; it is only sampled into a direction label when the user
// explicitly captures it.
type Compass struct {
	provider OrientationProvider

	mu      sync.Mutex
	bearing float64
	ready   bool
	active  bool
	done    chan struct{}
}

// NewCompass creates a compass over the given provider
func NewCompass(provider OrientationProvider) *Compass {
	return &Compass{provider: provider}
}

// Enable subscribes to orientation events and starts tracking. Permission
// and support failures come back unchanged from the provider; on failure no
// subscription is held.
func (c *Compass) Enable() error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	events, err := c.provider.Subscribe()
	if err != nil {
		return err
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.active = true
	c.done = done
	c.mu.Unlock()

	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				c.observe(ev)
			case <-done:
				return
			}
		}
	}()

	return nil
}

// observe folds one event into the live bearing. A platform-supplied
// absolute heading wins over the raw alpha value.
func (c *Compass) observe(ev OrientationEvent) {
	var bearing float64
	switch {
	case ev.CompassHeading != nil:
		bearing = spatial.NormalizeBearing(*ev.CompassHeading)
	case ev.Alpha != nil:
		bearing = spatial.BearingFromAlpha(*ev.Alpha)
	default:
		return
	}

	c.mu.Lock()
	c.bearing = bearing
	c.ready = true
	c.mu.Unlock()
}

// Heading returns the live bearing; ok is false until the first sample
func (c *Compass) Heading() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bearing, c.ready
}

// CaptureHeading snaps the live bearing to one of the 8 direction labels.
// Before the first sample it fails with ErrNotReady instead of guessing.
func (c *Compass) CaptureHeading() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return "", ErrNotReady
	}
	return spatial.DirectionFromBearing(c.bearing), nil
}

// Close tears down the subscription and the tracking goroutine
func (c *Compass) Close() error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = false
	close(c.done)
	c.done = nil
	c.ready = false
	c.mu.Unlock()

	return c.provider.Close()
}
