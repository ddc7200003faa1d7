// Package heatmap cleans server-supplied heat points before rendering. The
// clustering itself happens on the backend; the client only filters and
// normalizes.
package heatmap

import (
	"math"

	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/spatial"
)

const (
	// IntensityScale divides raw intensities above 1 (severity values top
	// out around 5.0 on the backend)
	IntensityScale = 5.0
	// DefaultIntensity stands in for a missing or unreadable intensity
	DefaultIntensity = 0.6
	// IntensityFloor keeps faint points visible on the dashboard viewer
	IntensityFloor = 0.1
)

// Sanitize drops points with non-finite or out-of-range coordinates and
// normalizes intensity into (0,1]. The dashboard viewer passes
// floorClamp=true to additionally lift intensities to at least 0.1; the
// second viewer leaves the lower bound alone.
func Sanitize(points []models.HeatPoint, floorClamp bool) []models.HeatPoint {
	out := make([]models.HeatPoint, 0, len(points))
	for _, p := range points {
		if !spatial.ValidLatLng(p.Lat, p.Lon) {
			continue
		}

		intensity := p.Intensity
		if math.IsNaN(intensity) || math.IsInf(intensity, 0) {
			intensity = DefaultIntensity
		}
		if intensity > 1 {
			intensity = math.Min(intensity/IntensityScale, 1.0)
		}
		if floorClamp {
			intensity = math.Max(IntensityFloor, math.Min(1.0, intensity))
		}

		p.Intensity = intensity
		out = append(out, p)
	}
	return out
}
