package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/b1s/threatlink-client/internal/heatmap"
	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/spatial"
)

// heatmap2Model is the second, independent heatmap viewer: viewport fitted
// to the data, no lower intensity clamp, plus a latest-sightings list
type heatmap2Model struct {
	deps   Deps
	sess   *session
	styles Styles
	width  int
	height int

	points  []models.HeatPoint
	loading bool
	errText string
	gen     int
	cancel  context.CancelFunc
}

func newHeatmap2Model(deps Deps, sess *session, styles Styles) *heatmap2Model {
	return &heatmap2Model{deps: deps, sess: sess, styles: styles}
}

func (m *heatmap2Model) Init() tea.Cmd {
	return m.fetch()
}

func (m *heatmap2Model) SetSize(w, h int) { m.width, m.height = w, h }

func (m *heatmap2Model) teardown() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *heatmap2Model) fetch() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loading = true
	m.errText = ""
	m.gen++
	gen := m.gen
	backend := m.deps.Backend

	return func() tea.Msg {
		points, err := backend.Heatmap(ctx)
		return heatmapResultMsg{gen: gen, points: points, err: err}
	}
}

func (m *heatmap2Model) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case heatmapResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.points = nil
			return m, nil
		}
		// No floor clamp here; faint points render faint
		m.points = heatmap.Sanitize(msg.points, false)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return m, Navigate(ScreenLanding, NavPayload{})
		case "r":
			if m.loading {
				return m, nil
			}
			return m, m.fetch()
		}
	}
	return m, nil
}

func (m *heatmap2Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Heatmap 2") + "\n")
	b.WriteString(m.styles.Subtitle.Render("DBSCAN output from "+m.deps.Backend.BaseURL()) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Hint.Render("Loading heatmap…") + "\n")
	case m.errText != "":
		b.WriteString(m.styles.Error.Render(m.errText) + "\n")
	case len(m.points) == 0:
		b.WriteString(m.styles.Hint.Render("No sightings available yet.") + "\n")
	default:
		cols := min(m.width-4, 72)
		rows := min(m.height/2, 14)
		grid := renderHeatGrid(m.points, cols, rows, fitBounds(m.points))
		b.WriteString(m.styles.Card.Render(grid) + "\n")
	}

	b.WriteString("\n" + m.styles.Title.Render("Latest Sightings"))
	b.WriteString("  " + m.styles.Subtitle.Render(fmt.Sprintf("%d points", len(m.points))) + "\n")
	b.WriteString(m.sightingsList())

	b.WriteString("\n" + m.styles.Hint.Render("r: refresh · esc: back"))
	return b.String()
}

func (m *heatmap2Model) sightingsList() string {
	if len(m.points) == 0 {
		return ""
	}

	limit := len(m.points)
	if limit > 20 {
		limit = 20
	}

	var b strings.Builder
	for _, p := range m.points[:limit] {
		category := p.Type
		if category == "" {
			category = "unknown"
		}
		direction := p.Direction
		if direction == "" {
			direction = "Unknown dir"
		}

		line := fmt.Sprintf("%s  %s  %s",
			m.styles.Accent.Render(category),
			direction,
			m.styles.Mono.Render(fmt.Sprintf("%.4f°, %.4f°", p.Lat, p.Lon)))

		// Distance from the user's confirmed location, when there is one
		if m.sess.location != nil {
			km := spatial.HaversineDistanceKm(
				m.sess.location.Latitude, m.sess.location.Longitude,
				p.Lat, p.Lon)
			line += "  " + m.styles.Hint.Render(fmt.Sprintf("%.1f km away", km))
		}

		b.WriteString(line + "\n")
		if p.Description != "" {
			b.WriteString("  " + m.styles.Subtitle.Render(truncate(p.Description, 70)) + "\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	// Rune-wise so multibyte descriptions are never cut mid-character
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
