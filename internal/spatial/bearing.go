package spatial

import (
	"math"
)

// DirectionLabels are the 8 cardinal/intercardinal labels in clockwise order
// starting from North
var DirectionLabels = []string{
	"North", "Northeast", "East", "Southeast",
	"South", "Southwest", "West", "Northwest",
}

// NormalizeBearing wraps an angle in degrees into [0, 360)
func NormalizeBearing(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// BearingFromAlpha derives a compass bearing from a raw device rotation
// alpha value: bearing = (360 - alpha) mod 360
func BearingFromAlpha(alpha float64) float64 {
	return NormalizeBearing(360 - alpha)
}

// DirectionFromBearing snaps a bearing to the nearest of 8 sectors, each 45°
// wide and centered on its label (so 337.5°–22.5° is North)
func DirectionFromBearing(bearing float64) string {
	idx := int(math.Round(NormalizeBearing(bearing)/45)) % 8
	return DirectionLabels[idx]
}
