package ui

import (
	"strings"
	"testing"

	"github.com/b1s/threatlink-client/internal/models"
)

func TestFitBoundsPadsEdges(t *testing.T) {
	points := []models.HeatPoint{
		{Lat: 50.0, Lon: 30.0},
		{Lat: 51.0, Lon: 31.0},
	}
	b := fitBounds(points)
	if b.minLat >= 50.0 || b.maxLat <= 51.0 {
		t.Errorf("latitude bounds should pad beyond the extremes: %+v", b)
	}
	if b.minLon >= 30.0 || b.maxLon <= 31.0 {
		t.Errorf("longitude bounds should pad beyond the extremes: %+v", b)
	}
}

func TestFitBoundsSinglePoint(t *testing.T) {
	b := fitBounds([]models.HeatPoint{{Lat: 50.45, Lon: 30.52}})
	if b.maxLat <= b.minLat || b.maxLon <= b.minLon {
		t.Errorf("a single point must still produce a non-degenerate viewport: %+v", b)
	}
}

func TestFixedBoundsAround(t *testing.T) {
	b := fixedBoundsAround(50.45, 30.52, 0.12)
	if b.minLat != 50.33 || b.maxLat != 50.57 {
		t.Errorf("latitude span wrong: %+v", b)
	}
	if b.minLon != 30.40 || b.maxLon != 30.64 {
		t.Errorf("longitude span wrong: %+v", b)
	}
}

func TestRenderHeatGridShape(t *testing.T) {
	points := []models.HeatPoint{{Lat: 50.45, Lon: 30.52, Intensity: 0.9}}
	out := renderHeatGrid(points, 10, 4, fixedBoundsAround(50.45, 30.52, 0.1))

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "█") {
		t.Error("grid should mark the occupied cell")
	}
	if !strings.Contains(out, "·") {
		t.Error("grid should mark empty cells")
	}
}

func TestRenderHeatGridIgnoresOutOfViewport(t *testing.T) {
	points := []models.HeatPoint{{Lat: 10, Lon: 10, Intensity: 1}}
	out := renderHeatGrid(points, 8, 3, fixedBoundsAround(50.45, 30.52, 0.1))
	if strings.Contains(out, "█") {
		t.Error("points outside the viewport must not render")
	}
}

func TestRenderHeatGridDegenerateBounds(t *testing.T) {
	out := renderHeatGrid(nil, 8, 3, gridBounds{minLat: 50, maxLat: 50, minLon: 30, maxLon: 30})
	if out != "" {
		t.Errorf("zero-span bounds should render nothing, got %q", out)
	}
}
