package sensor

import (
	"context"
	"time"

	"github.com/b1s/threatlink-client/internal/models"
)

// FakeLocationProvider is a deterministic LocationProvider for tests
type FakeLocationProvider struct {
	Location models.GeoLocation
	Err      error
	Delay    time.Duration
}

// Resolve returns the configured location or error after the optional delay
func (f *FakeLocationProvider) Resolve(ctx context.Context) (models.GeoLocation, error) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return models.GeoLocation{}, ctx.Err()
		}
	}
	if f.Err != nil {
		return models.GeoLocation{}, f.Err
	}
	return f.Location, nil
}

// FakeOrientationProvider is a scriptable OrientationProvider for tests
type FakeOrientationProvider struct {
	SubscribeErr error

	events chan OrientationEvent
}

// Subscribe returns the event channel, creating it on first use
func (f *FakeOrientationProvider) Subscribe() (<-chan OrientationEvent, error) {
	if f.SubscribeErr != nil {
		return nil, f.SubscribeErr
	}
	if f.events == nil {
		f.events = make(chan OrientationEvent, 16)
	}
	return f.events, nil
}

// Emit pushes one orientation sample to the subscriber
func (f *FakeOrientationProvider) Emit(ev OrientationEvent) {
	if f.events != nil {
		f.events <- ev
	}
}

// EmitAlpha pushes a raw rotation sample
func (f *FakeOrientationProvider) EmitAlpha(alpha float64) {
	f.Emit(OrientationEvent{Alpha: &alpha})
}

// EmitHeading pushes an absolute compass heading sample
func (f *FakeOrientationProvider) EmitHeading(heading float64) {
	f.Emit(OrientationEvent{CompassHeading: &heading})
}

// Close closes the event channel
func (f *FakeOrientationProvider) Close() error {
	if f.events != nil {
		close(f.events)
		f.events = nil
	}
	return nil
}
