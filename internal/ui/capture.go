package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// captureState mirrors the capture flow: idle → preview → uploading →
// success | error
type captureState int

const (
	captureIdle captureState = iota
	capturePreview
	captureUploading
	captureSuccess
	captureError
)

// captureDoneMsg fires when the simulated upload delay elapses
type captureDoneMsg struct{}

type captureModel struct {
	deps   Deps
	styles Styles
	width  int
	height int

	state   captureState
	path    textinput.Model
	file    string
	size    int64
	message string
	editing bool
}

func newCaptureModel(deps Deps, styles Styles) *captureModel {
	path := textinput.New()
	path.Placeholder = "/path/to/photo.jpg"

	return &captureModel{
		deps:    deps,
		styles:  styles,
		path:    path,
		message: "Use your camera to capture visual evidence.",
	}
}

func (m *captureModel) Init() tea.Cmd { return nil }

func (m *captureModel) SetSize(w, h int) { m.width, m.height = w, h }

func (m *captureModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case captureDoneMsg:
		m.state = captureSuccess
		m.message = "Photo captured successfully."
		return m, Navigate(ScreenReport, NavPayload{PhotoCaptured: true})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *captureModel) handleKey(msg tea.KeyMsg) (screenModel, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "esc":
			m.editing = false
			m.path.Blur()
			return m, nil
		case "enter":
			m.editing = false
			m.path.Blur()
			m.selectFile(m.path.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd
	}

	if m.state == captureUploading {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, Navigate(ScreenReport, NavPayload{})
	case "o", "enter":
		if m.file == "" {
			m.editing = true
			return m, m.path.Focus()
		}
		return m.upload()
	case "r":
		// Retake: discard the current file and reopen the picker
		m.file = ""
		m.size = 0
		m.state = captureIdle
		m.message = "Use your camera to capture visual evidence."
		m.path.SetValue("")
		m.editing = true
		return m, m.path.Focus()
	}
	return m, nil
}

func (m *captureModel) selectFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		m.file = ""
		m.size = 0
		m.state = captureIdle
		m.message = "No photo captured. Press o to open the camera."
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		m.state = captureError
		m.message = "Unable to read that file. Try again."
		return
	}

	m.file = path
	m.size = info.Size()
	m.state = capturePreview
	m.message = "Photo ready. Upload it or retake another shot."
}

func (m *captureModel) upload() (screenModel, tea.Cmd) {
	if m.file == "" {
		m.state = captureError
		m.message = "Take a photo before uploading."
		return m, nil
	}

	m.state = captureUploading
	m.message = "Saving photo to your report…"
	// The capture path only flags the photo on the draft; no bytes leave the
	// device here, matching the web client's capture screen
	return m, tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return captureDoneMsg{}
	})
}

func (m *captureModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Secure Camera Capture") + "\n")
	b.WriteString(m.styles.Subtitle.Render(m.message) + "\n\n")

	switch {
	case m.editing:
		b.WriteString(m.path.View() + "\n")
		b.WriteString(m.styles.Hint.Render("enter: take photo · esc: cancel") + "\n")
	case m.file != "":
		preview := fmt.Sprintf("%s\n%d bytes", m.file, m.size)
		b.WriteString(m.styles.Card.Render(preview) + "\n")
	default:
		b.WriteString(m.styles.Card.Render("Press o to open the camera and snap a photo.") + "\n")
	}

	if m.state == captureError {
		b.WriteString("\n" + m.styles.Error.Render(m.message) + "\n")
	}
	if m.state == captureUploading {
		b.WriteString("\n" + m.styles.Hint.Render("Uploading…") + "\n")
	}

	label := "open camera"
	if m.file != "" {
		label = "upload photo"
		if m.state == captureError {
			label = "retry upload"
		}
	}
	b.WriteString("\n" + m.styles.Hint.Render(
		fmt.Sprintf("o: %s · r: retake photo · esc: cancel", label)))
	return b.String()
}
