package models

import (
	"encoding/json"
	"math"
)

// HeatPoint represents a single pre-clustered point from the heatmap endpoint.
// Direction, Type, Timestamp and Description are only present in the richer
// payload variant.
type HeatPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Intensity   float64 `json:"intensity"` // Normalized into (0,1] by the client
	Direction   string  `json:"direction,omitempty"`
	Type        string  `json:"type,omitempty"`
	Timestamp   *int64  `json:"timestamp,omitempty"` // Unix timestamp in milliseconds
	Description string  `json:"description,omitempty"`
}

// UnmarshalJSON distinguishes a missing intensity from an explicit 0: absent
// values decode as NaN so the sanitizer can apply its default.
func (h *HeatPoint) UnmarshalJSON(data []byte) error {
	type alias HeatPoint
	aux := struct {
		Intensity *float64 `json:"intensity"`
		*alias
	}{alias: (*alias)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Intensity == nil {
		h.Intensity = math.NaN()
	} else {
		h.Intensity = *aux.Intensity
	}
	return nil
}
