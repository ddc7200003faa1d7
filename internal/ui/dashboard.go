package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/b1s/threatlink-client/internal/heatmap"
	"github.com/b1s/threatlink-client/internal/models"
)

// Fallback center when no points come back (Kyiv)
const (
	fallbackLat = 50.4501
	fallbackLon = 30.5234
)

// heatmapResultMsg delivers a fetched (raw) point list to a viewer
type heatmapResultMsg struct {
	gen    int
	points []models.HeatPoint
	err    error
}

// dashboardModel is the primary heatmap viewer: fixed viewport around the
// first point, intensity floor-clamped so faint clusters stay visible
type dashboardModel struct {
	deps   Deps
	styles Styles
	width  int
	height int

	points  []models.HeatPoint
	loading bool
	errText string
	gen     int
	cancel  context.CancelFunc
}

func newDashboardModel(deps Deps, styles Styles) *dashboardModel {
	return &dashboardModel{deps: deps, styles: styles}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *dashboardModel) SetSize(w, h int) { m.width, m.height = w, h }

// teardown aborts any in-flight fetch when the screen unmounts
func (m *dashboardModel) teardown() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *dashboardModel) fetch() tea.Cmd {
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

func (m *dashboardModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
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
		m.points = heatmap.Sanitize(msg.points, true)
		if len(m.points) == 0 && len(msg.points) > 0 {
			m.errText = "no valid heatmap points found"
		}
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

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Threat Heatmap") + "\n")
	if len(m.points) > 0 {
		plural := "s"
		if len(m.points) == 1 {
			plural = ""
		}
		b.WriteString(m.styles.Subtitle.Render(
			fmt.Sprintf("%d active threat%s", len(m.points), plural)) + "\n\n")
	} else {
		b.WriteString(m.styles.Subtitle.Render("Live threat intensity") + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.styles.Hint.Render("Loading heatmap data…") + "\n")
	case m.errText != "":
		b.WriteString(m.styles.Error.Render("Error: "+m.errText) + "\n")
	default:
		// Empty map still renders, centered on the fallback
		centerLat, centerLon := fallbackLat, fallbackLon
		if len(m.points) > 0 {
			centerLat, centerLon = m.points[0].Lat, m.points[0].Lon
		}
		cols := min(m.width-4, 72)
		rows := min(m.height-8, 18)
		grid := renderHeatGrid(m.points, cols, rows,
			fixedBoundsAround(centerLat, centerLon, 0.12))
		b.WriteString(m.styles.Card.Render(grid) + "\n")
		if len(m.points) == 0 {
			b.WriteString(m.styles.Hint.Render("No threat data available") + "\n")
		} else {
			b.WriteString(m.styles.Hint.Render("DBSCAN clustered data · updated live") + "\n")
		}
	}

	b.WriteString("\n" + m.styles.Hint.Render("r: refresh · esc: back"))
	return b.String()
}
