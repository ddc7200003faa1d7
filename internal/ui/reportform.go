package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/sensor"
	"github.com/b1s/threatlink-client/internal/spatial"
)

type submitState int

const (
	submitIdle submitState = iota
	submitLoading
	submitError
)

type photoState int

const (
	photoIdle photoState = iota
	photoUploading
	photoSuccess
	photoError
)

type orientationState int

const (
	orientIdle orientationState = iota
	orientTracking
	orientError
)

type reportLocState int

const (
	reportLocIdle reportLocState = iota
	reportLocResolving
	reportLocReady
	reportLocError
)

// focusArea says which control owns the keyboard
type focusArea int

const (
	focusForm focusArea = iota
	focusDescription
	focusPhotoPath
)

type reportFixMsg struct {
	gen int64
	loc models.GeoLocation
	err error
}

type compassTickMsg struct{}

type photoUploadMsg struct{ err error }

type submitResultMsg struct {
	code string
	err  error
}

type reportModel struct {
	deps   Deps
	sess   *session
	styles Styles
	width  int
	height int

	focus       focusArea
	description textarea.Model
	photoPath   textinput.Model

	location  *models.GeoLocation
	locState  reportLocState
	locText   string
	gen       int64

	compass     *sensor.Compass
	orientState orientationState
	orientText  string

	hasPhoto   bool
	photoState photoState
	photoText  string

	submitState submitState
	submitText  string
}

func newReportModel(deps Deps, sess *session, styles Styles, payload NavPayload) *reportModel {
	desc := textarea.New()
	desc.Placeholder = "Describe what you saw (optional)"
	desc.SetValue(deps.Drafts.Draft().Description)
	desc.CharLimit = 500

	path := textinput.New()
	path.Placeholder = "/path/to/photo.jpg"

	m := &reportModel{
		deps:        deps,
		sess:        sess,
		styles:      styles,
		description: desc,
		photoPath:   path,
		compass:     sensor.NewCompass(deps.Orientation),
	}

	// Returning from the capture screen: consume the payload exactly once.
	// The flag itself lives on the session so a detour through the capture
	// screen cannot discard an earlier upload.
	if payload.PhotoCaptured {
		sess.photoCaptured = true
	}
	if sess.photoCaptured {
		m.hasPhoto = true
		m.photoState = photoSuccess
		m.photoText = "Photo captured via secure camera."
	} else if payload.PhotoError != "" {
		m.photoState = photoError
		m.photoText = payload.PhotoError
	}

	if sess.location != nil {
		m.location = sess.location
		m.locState = reportLocReady
		m.locText = "Location locked from confirmation screen."
	}
	return m
}

func (m *reportModel) Init() tea.Cmd {
	if m.location != nil {
		return nil
	}
	return m.resolveLocation()
}

func (m *reportModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.description.SetWidth(min(w-4, 72))
}

// teardown releases the orientation subscription when leaving the screen
func (m *reportModel) teardown() {
	if err := m.compass.Close(); err != nil {
		m.deps.Log.Warn("compass teardown failed", zap.Error(err))
	}
}

func (m *reportModel) resolveLocation() tea.Cmd {
	m.locState = reportLocResolving
	m.locText = "Acquiring your position…"
	m.gen = fixSeq.Add(1)
	gen := m.gen
	provider := m.deps.LocProvider

	return func() tea.Msg {
		loc, err := provider.Resolve(context.Background())
		return reportFixMsg{gen: gen, loc: loc, err: err}
	}
}

func (m *reportModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportFixMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.locState = reportLocError
			m.locText = msg.err.Error()
			return m, nil
		}
		loc := msg.loc
		m.location = &loc
		m.locState = reportLocReady
		m.locText = "Location locked."
		if err := m.deps.Locations.Save(loc); err != nil {
			m.deps.Log.Warn("failed to cache location", zap.Error(err))
		}
		return m, nil

	case compassTickMsg:
		if m.orientState != orientTracking {
			return m, nil
		}
		return m, compassTick()

	case photoUploadMsg:
		if msg.err != nil {
			m.photoState = photoError
			m.photoText = msg.err.Error()
		} else {
			m.hasPhoto = true
			m.sess.photoCaptured = true
			m.photoState = photoSuccess
			m.photoText = "Photo captured securely."
		}
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			m.submitState = submitError
			m.submitText = msg.err.Error()
			return m, nil
		}
		m.submitState = submitIdle
		m.sess.photoCaptured = false
		return m, Navigate(ScreenConfirmation, NavPayload{ReportID: msg.code})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *reportModel) handleKey(msg tea.KeyMsg) (screenModel, tea.Cmd) {
	// Editing modes swallow everything except escape/enter
	switch m.focus {
	case focusDescription:
		if msg.String() == "esc" {
			m.focus = focusForm
			m.description.Blur()
			desc := m.description.Value()
			m.deps.Drafts.Update(models.DraftUpdate{Description: &desc})
			return m, nil
		}
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		return m, cmd

	case focusPhotoPath:
		switch msg.String() {
		case "esc":
			m.focus = focusForm
			m.photoPath.Blur()
			return m, nil
		case "enter":
			m.focus = focusForm
			m.photoPath.Blur()
			return m.uploadPhoto(m.photoPath.Value())
		}
		var cmd tea.Cmd
		m.photoPath, cmd = m.photoPath.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "b":
		return m, Navigate(ScreenLanding, NavPayload{})
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		cat := models.ThreatCategories[idx]
		m.deps.Drafts.Update(models.DraftUpdate{SelectedThreat: &cat})
		return m, nil
	case "o":
		return m.enableCompass()
	case "d":
		return m.captureHeading()
	case "e":
		m.focus = focusDescription
		return m, m.description.Focus()
	case "u":
		m.focus = focusPhotoPath
		return m, m.photoPath.Focus()
	case "c":
		return m, Navigate(ScreenCapture, NavPayload{})
	case "s":
		return m.submit()
	}
	return m, nil
}

func compassTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return compassTickMsg{}
	})
}

func (m *reportModel) enableCompass() (screenModel, tea.Cmd) {
	if m.orientState == orientTracking {
		return m, nil
	}
	if err := m.compass.Enable(); err != nil {
		m.orientState = orientError
		switch {
		case errors.Is(err, sensor.ErrPermissionDenied):
			m.orientText = "Permission denied. Enable motion & orientation access."
		case errors.Is(err, sensor.ErrUnsupported):
			m.orientText = "Compass not supported in this environment."
		default:
			m.orientText = err.Error()
		}
		return m, nil
	}
	m.orientState = orientTracking
	m.orientText = ""
	return m, compassTick()
}

func (m *reportModel) captureHeading() (screenModel, tea.Cmd) {
	label, err := m.compass.CaptureHeading()
	if err != nil {
		m.orientText = "Point your device and wait for the compass to settle before capturing."
		return m, nil
	}
	m.orientText = ""
	m.deps.Drafts.Update(models.DraftUpdate{Direction: &label})
	return m, nil
}

func (m *reportModel) uploadPhoto(path string) (screenModel, tea.Cmd) {
	path = strings.TrimSpace(path)
	if path == "" {
		return m, nil
	}
	m.photoState = photoUploading
	m.photoText = "Uploading photo…"
	backend := m.deps.Backend

	return m, func() tea.Msg {
		return photoUploadMsg{err: backend.UploadCapture(context.Background(), path)}
	}
}

func (m *reportModel) submit() (screenModel, tea.Cmd) {
	// No two submissions in flight from the same form
	if m.submitState == submitLoading {
		return m, nil
	}

	// Pull any unsaved description into the draft before validating
	desc := m.description.Value()
	m.deps.Drafts.Update(models.DraftUpdate{Description: &desc})

	m.submitState = submitLoading
	m.submitText = ""
	service := m.deps.Submit
	loc := m.location

	return m, func() tea.Msg {
		code, err := service.Submit(context.Background(), loc)
		return submitResultMsg{code: code, err: err}
	}
}

func (m *reportModel) View() string {
	draft := m.deps.Drafts.Draft()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Report a Threat") + "\n\n")

	b.WriteString(m.styles.Title.Render("What did you see?") + "\n")
	var cards []string
	for i, cat := range models.ThreatCategories {
		label := fmt.Sprintf("%d. %s", i+1, cat.Label())
		if cat == draft.SelectedThreat {
			cards = append(cards, m.styles.Selected.Render(label))
		} else {
			cards = append(cards, m.styles.Option.Render(label))
		}
	}
	b.WriteString(strings.Join(cards, " "))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Direction") + "\n")
	b.WriteString(m.compassLine(draft.Direction) + "\n\n")

	b.WriteString(m.styles.Title.Render("Location") + "\n")
	b.WriteString(m.locationLine() + "\n\n")

	b.WriteString(m.styles.Title.Render("Description") + "\n")
	b.WriteString(m.description.View() + "\n\n")

	b.WriteString(m.styles.Title.Render("Photo evidence") + "\n")
	b.WriteString(m.photoLine() + "\n\n")

	if m.submitState == submitError {
		b.WriteString(m.styles.Error.Render(m.submitText) + "\n")
	}
	if m.submitState == submitLoading {
		b.WriteString(m.styles.Hint.Render("Transmitting report…") + "\n")
	}

	b.WriteString("\n" + m.styles.Hint.Render(
		"1-4: threat · o: compass on · d: capture direction · e: description · "+
			"u: upload photo · c: camera · s: submit · esc: back"))
	return b.String()
}

func (m *reportModel) compassLine(direction string) string {
	var parts []string
	if direction != "" {
		parts = append(parts, m.styles.Success.Render("Captured: "+direction))
	}
	switch m.orientState {
	case orientTracking:
		if bearing, ok := m.compass.Heading(); ok {
			parts = append(parts, m.styles.Mono.Render(fmt.Sprintf("live %.0f° (%s)",
				bearing, spatial.DirectionFromBearing(bearing))))
		} else {
			parts = append(parts, m.styles.Hint.Render("waiting for compass…"))
		}
	case orientError:
		parts = append(parts, m.styles.Error.Render(m.orientText))
	default:
		parts = append(parts, m.styles.Hint.Render("compass off"))
	}
	if m.orientText != "" && m.orientState == orientTracking {
		parts = append(parts, m.styles.Error.Render(m.orientText))
	}
	return strings.Join(parts, "  ")
}

func (m *reportModel) locationLine() string {
	switch m.locState {
	case reportLocReady:
		return m.styles.Mono.Render(spatial.FormatCoordinates(m.location.Latitude, m.location.Longitude)) +
			"  " + m.styles.Hint.Render(m.locText)
	case reportLocResolving:
		return m.styles.Hint.Render(m.locText)
	case reportLocError:
		return m.styles.Error.Render(m.locText)
	}
	return m.styles.Hint.Render("Location unavailable.")
}

func (m *reportModel) photoLine() string {
	switch m.photoState {
	case photoUploading:
		return m.styles.Hint.Render(m.photoText)
	case photoSuccess:
		return m.styles.Success.Render(m.photoText)
	case photoError:
		return m.styles.Error.Render(m.photoText)
	}
	if m.focus == focusPhotoPath {
		return m.photoPath.View()
	}
	return m.styles.Hint.Render("No photo attached.")
}
