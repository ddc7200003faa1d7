package spatial

import (
	"fmt"
	"math"
)

// FormatCoordinates renders a coordinate pair with hemisphere letters,
// e.g. "50.4501° N, 30.5234° E"
func FormatCoordinates(lat, lon float64) string {
	latHemisphere := "N"
	if lat < 0 {
		latHemisphere = "S"
	}
	lonHemisphere := "E"
	if lon < 0 {
		lonHemisphere = "W"
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s",
		math.Abs(lat), latHemisphere, math.Abs(lon), lonHemisphere)
}
