// Package sensor models device capabilities (position, orientation) that are
// owned by the platform, not by this client. Each capability is an interface
// with a platform-backed implementation and a deterministic fake, so the
// report flow can be exercised without hardware.
package sensor

import (
	"context"
	"errors"

	"github.com/b1s/threatlink-client/internal/models"
)

var (
	// ErrPermissionDenied means the platform refused sensor access
	ErrPermissionDenied = errors.New("sensor permission denied")
	// ErrUnsupported means no provider is available in this environment
	ErrUnsupported = errors.New("sensor not supported in this environment")
	// ErrNotReady means no sample has been received yet
	ErrNotReady = errors.New("sensor has no sample yet")
)

// LocationProvider performs a single one-shot position fix. Resolve blocks
// until a fix, a failure, or ctx expiry.
type LocationProvider interface {
	Resolve(ctx context.Context) (models.GeoLocation, error)
}

// OrientationEvent is one device-orientation sample. CompassHeading is the
// platform-supplied absolute heading when available; Alpha is the raw
// rotation value. Either may be absent.
type OrientationEvent struct {
	CompassHeading *float64
	Alpha          *float64
}

// OrientationProvider streams orientation events after an explicit
// subscription. Close must release the underlying listener.
type OrientationProvider interface {
	Subscribe() (<-chan OrientationEvent, error)
	Close() error
}
