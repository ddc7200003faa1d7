// Package ui is the terminal rendition of the ThreatLink screens, built as
// bubbletea models switched by a typed navigation controller.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ThreatLink palette, carried over from the web client theme
var (
	ColorUrgent      = lipgloss.Color("#ff4d4d") // threat highlights, errors
	ColorInteractive = lipgloss.Color("#3bdcf7") // actions, report ids
	ColorValidated   = lipgloss.Color("#7ef29a") // success states
	ColorMuted       = lipgloss.Color("#8a8f98")
	ColorBorder      = lipgloss.Color("#3a3f46")

	// Heat ramp, blue through red, mirroring the web gradient stops
	heatRamp = []lipgloss.Color{
		"#2020ff", "#00c8ff", "#40ff40", "#ffff30", "#ff3020",
	}
)

// Styles holds the shared lipgloss styles
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Accent   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Mono     lipgloss.Style
}

// DefaultStyles builds the shared style set
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(ColorMuted),
		Hint:     lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(ColorUrgent),
		Success:  lipgloss.NewStyle().Foreground(ColorValidated),
		Accent:   lipgloss.NewStyle().Foreground(ColorInteractive),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorUrgent).
			Bold(true).
			Padding(0, 1),
		Option: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Mono: lipgloss.NewStyle().Foreground(ColorInteractive),
	}
}

// heatColor maps a normalized intensity into the heat ramp
func heatColor(intensity float64) lipgloss.Color {
	if intensity <= 0 {
		return heatRamp[0]
	}
	idx := int(intensity * float64(len(heatRamp)))
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return heatRamp[idx]
}
