package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/sensor"
	"github.com/b1s/threatlink-client/internal/spatial"
)

// fixSeq numbers position-fix requests process-wide. Screen models come and
// go, so a per-model counter could collide with a fix still in flight from a
// previous instance of the same screen.
var fixSeq atomic.Int64

// locationState tracks the landing screen's permission flow
type locationState int

const (
	locPrompt locationState = iota
	locRequesting
	locGranted
	locDenied
	locUnsupported
	locError
)

// locationFixMsg delivers the outcome of a position fix. gen ties the fix to
// the request that started it so a slow response arriving after the user
// moved on is ignored.
type locationFixMsg struct {
	gen int64
	loc models.GeoLocation
	err error
}

type landingModel struct {
	deps   Deps
	sess   *session
	styles Styles
	width  int
	height int

	state     locationState
	location  *models.GeoLocation
	confirmed bool
	errText   string
	gen       int64
}

func newLandingModel(deps Deps, sess *session, styles Styles) *landingModel {
	m := &landingModel{deps: deps, sess: sess, styles: styles, state: locPrompt}

	if sess.location != nil {
		m.location = sess.location
		m.state = locGranted
		m.confirmed = sess.confirmed
		return m
	}

	// Restore the last known location so a returning user skips the prompt
	if saved, err := deps.Locations.Load(); err == nil && saved != nil {
		m.location = saved
		m.state = locGranted
		m.confirmed = true
		sess.location = saved
		sess.confirmed = true
	}
	return m
}

func (m *landingModel) Init() tea.Cmd { return nil }

func (m *landingModel) SetSize(w, h int) { m.width, m.height = w, h }

func (m *landingModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case locationFixMsg:
		if msg.gen != m.gen {
			// Stale fix from a superseded request
			return m, nil
		}
		return m.applyFix(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			return m.requestLocation()
		case "c":
			return m.confirmLocation()
		case "t":
			return m, Navigate(ScreenReport, NavPayload{})
		case "d":
			return m, Navigate(ScreenDashboard, NavPayload{})
		case "2":
			return m, Navigate(ScreenHeatmap2, NavPayload{})
		case "h":
			return m, Navigate(ScreenHelp, NavPayload{})
		case "p":
			return m, Navigate(ScreenPitch, NavPayload{})
		case "l":
			return m, Navigate(ScreenLearn, NavPayload{})
		}
	}
	return m, nil
}

func (m *landingModel) requestLocation() (screenModel, tea.Cmd) {
	if m.state == locRequesting {
		return m, nil
	}
	m.state = locRequesting
	m.errText = ""
	m.gen = fixSeq.Add(1)
	gen := m.gen
	provider := m.deps.LocProvider

	return m, func() tea.Msg {
		loc, err := provider.Resolve(context.Background())
		return locationFixMsg{gen: gen, loc: loc, err: err}
	}
}

func (m *landingModel) applyFix(msg locationFixMsg) (screenModel, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, sensor.ErrPermissionDenied):
			m.state = locDenied
		case errors.Is(msg.err, sensor.ErrUnsupported):
			m.state = locUnsupported
		default:
			m.state = locError
			m.errText = msg.err.Error()
		}
		// A failed fix also unlocks any previously confirmed location
		m.sess.location = nil
		m.sess.confirmed = false
		return m, nil
	}

	loc := msg.loc
	m.location = &loc
	m.state = locGranted
	// A fresh fix needs an explicit confirm before submission reuses it
	m.confirmed = false
	m.sess.location = nil
	m.sess.confirmed = false

	if err := m.deps.Locations.Save(loc); err != nil {
		m.deps.Log.Warn("failed to cache location", zap.Error(err))
	}
	return m, nil
}

func (m *landingModel) confirmLocation() (screenModel, tea.Cmd) {
	if m.state != locGranted || m.location == nil || m.confirmed {
		return m, nil
	}
	m.confirmed = true
	m.sess.location = m.location
	m.sess.confirmed = true
	if err := m.deps.Locations.Save(*m.location); err != nil {
		m.deps.Log.Warn("failed to cache location", zap.Error(err))
	}
	return m, nil
}

func (m *landingModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ThreatLink"))
	b.WriteString("  " + m.styles.Subtitle.Render("by B1s"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Real-time civilian-to-military threat reporting"))
	b.WriteString("\n\n")

	b.WriteString(m.locationCard())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Actions") + "\n")
	b.WriteString(fmt.Sprintf("  %s report a threat\n", m.styles.Accent.Render("[t]")))
	b.WriteString(fmt.Sprintf("  %s threat heatmap\n", m.styles.Accent.Render("[d]")))
	b.WriteString(fmt.Sprintf("  %s latest sightings\n", m.styles.Accent.Render("[2]")))
	b.WriteString(fmt.Sprintf("  %s help request\n", m.styles.Accent.Render("[h]")))
	b.WriteString(fmt.Sprintf("  %s pitch deck   %s learn hub\n",
		m.styles.Accent.Render("[p]"), m.styles.Accent.Render("[l]")))
	b.WriteString("\n" + m.styles.Hint.Render("r: request location · c: confirm location · q: quit"))

	return b.String()
}

func (m *landingModel) locationCard() string {
	switch m.state {
	case locPrompt:
		return m.styles.Card.Render("Location not shared yet. Press r to request a fix.")
	case locRequesting:
		return m.styles.Card.Render("Acquiring your position…")
	case locDenied:
		return m.styles.Card.Render(m.styles.Error.Render("Location permission denied.") +
			"\nEnable location access for your terminal sensor command.")
	case locUnsupported:
		return m.styles.Card.Render(m.styles.Error.Render("Location unavailable on this device."))
	case locError:
		return m.styles.Card.Render(m.styles.Error.Render("Unable to retrieve location: " + m.errText))
	case locGranted:
		text := m.styles.Mono.Render(spatial.FormatCoordinates(m.location.Latitude, m.location.Longitude))
		if m.confirmed {
			text += "\n" + m.styles.Success.Render("Location confirmed.")
		} else {
			text += "\n" + m.styles.Hint.Render("Press c to confirm this location for reports.")
		}
		return m.styles.Card.Render(text)
	}
	return ""
}
