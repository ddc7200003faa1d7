package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/b1s/threatlink-client/internal/models"
)

// gridBounds is the viewport for the terminal heat grid
type gridBounds struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

// fixedBoundsAround centers the viewport on one point with a fixed span,
// like a map opened at a fixed zoom level
func fixedBoundsAround(lat, lon, spanDeg float64) gridBounds {
	return gridBounds{
		minLat: lat - spanDeg,
		maxLat: lat + spanDeg,
		minLon: lon - spanDeg,
		maxLon: lon + spanDeg,
	}
}

// fitBounds stretches the viewport around all points
func fitBounds(points []models.HeatPoint) gridBounds {
	b := gridBounds{minLat: 90, maxLat: -90, minLon: 180, maxLon: -180}
	for _, p := range points {
		if p.Lat < b.minLat {
			b.minLat = p.Lat
		}
		if p.Lat > b.maxLat {
			b.maxLat = p.Lat
		}
		if p.Lon < b.minLon {
			b.minLon = p.Lon
		}
		if p.Lon > b.maxLon {
			b.maxLon = p.Lon
		}
	}
	// Pad so edge points do not sit on the border
	latPad := (b.maxLat - b.minLat) * 0.1
	lonPad := (b.maxLon - b.minLon) * 0.1
	if latPad == 0 {
		latPad = 0.05
	}
	if lonPad == 0 {
		lonPad = 0.05
	}
	b.minLat -= latPad
	b.maxLat += latPad
	b.minLon -= lonPad
	b.maxLon += lonPad
	return b
}

// renderHeatGrid bins points into a cols×rows cell grid and colors each cell
// by its hottest point
func renderHeatGrid(points []models.HeatPoint, cols, rows int, bounds gridBounds) string {
	if cols < 4 {
		cols = 4
	}
	if rows < 2 {
		rows = 2
	}

	cells := make([]float64, cols*rows)
	latSpan := bounds.maxLat - bounds.minLat
	lonSpan := bounds.maxLon - bounds.minLon
	if latSpan <= 0 || lonSpan <= 0 {
		return ""
	}

	for _, p := range points {
		if p.Lat < bounds.minLat || p.Lat > bounds.maxLat ||
			p.Lon < bounds.minLon || p.Lon > bounds.maxLon {
			continue
		}
		// Row 0 is the northern edge
		row := int((bounds.maxLat - p.Lat) / latSpan * float64(rows))
		col := int((p.Lon - bounds.minLon) / lonSpan * float64(cols))
		if row >= rows {
			row = rows - 1
		}
		if col >= cols {
			col = cols - 1
		}
		idx := row*cols + col
		if p.Intensity > cells[idx] {
			cells[idx] = p.Intensity
		}
	}

	empty := lipgloss.NewStyle().Foreground(ColorBorder)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			intensity := cells[row*cols+col]
			if intensity == 0 {
				b.WriteString(empty.Render("·"))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(heatColor(intensity)).Render("█"))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
