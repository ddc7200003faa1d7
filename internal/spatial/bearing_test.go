package spatial

import (
	"testing"
)

func TestDirectionFromBearing(t *testing.T) {
	cases := []struct {
		bearing float64
		want    string
	}{
		{0, "North"},
		{22.4, "North"},
		{22.6, "Northeast"},
		{44, "Northeast"},
		{46, "Northeast"},
		{90, "East"},
		{135, "Southeast"},
		{180, "South"},
		{225, "Southwest"},
		{270, "West"},
		{315, "Northwest"},
		{337.4, "Northwest"},
		{337.6, "North"},
		{359, "North"},
		{360, "North"},
	}

	for _, tc := range cases {
		if got := DirectionFromBearing(tc.bearing); got != tc.want {
			t.Errorf("DirectionFromBearing(%v) = %q, want %q", tc.bearing, got, tc.want)
		}
	}
}

func TestNormalizeBearing(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-90, 270},
		{720.5, 0.5},
	}
	for _, tc := range cases {
		if got := NormalizeBearing(tc.in); got != tc.want {
			t.Errorf("NormalizeBearing(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBearingFromAlpha(t *testing.T) {
	// A raw rotation of 90° means the device points at 270°
	if got := BearingFromAlpha(90); got != 270 {
		t.Fatalf("BearingFromAlpha(90) = %v, want 270", got)
	}
	if got := BearingFromAlpha(0); got != 0 {
		t.Fatalf("BearingFromAlpha(0) = %v, want 0", got)
	}
}
