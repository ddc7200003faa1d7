package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/b1s/threatlink-client/internal/spatial"
)

// helpType is the kind of assistance being requested
type helpType int

const (
	helpEmergency helpType = iota
	helpTrapped
	helpOther
)

func (h helpType) label() string {
	switch h {
	case helpEmergency:
		return "Medical Emergency"
	case helpTrapped:
		return "Trapped / Evacuation"
	case helpOther:
		return "Other"
	}
	return ""
}

type helpModel struct {
	sess   *session
	styles Styles
	width  int
	height int

	selected    helpType
	description textarea.Model
	editing     bool
	openedAt    time.Time

	bannerOK  string
	bannerErr string
}

func newHelpModel(sess *session, styles Styles) *helpModel {
	desc := textarea.New()
	desc.Placeholder = "Anything the responders should know (optional)"

	return &helpModel{
		sess:        sess,
		styles:      styles,
		description: desc,
		openedAt:    time.Now(),
	}
}

func (m *helpModel) Init() tea.Cmd { return nil }

func (m *helpModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.description.SetWidth(min(w-4, 72))
}

func (m *helpModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		if key.String() == "esc" {
			m.editing = false
			m.description.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "esc", "b":
		return m, Navigate(ScreenLanding, NavPayload{})
	case "1":
		m.selected = helpEmergency
	case "2":
		m.selected = helpTrapped
	case "3":
		m.selected = helpOther
	case "e":
		m.editing = true
		return m, m.description.Focus()
	case "s":
		m.submit()
	}
	return m, nil
}

// submit only validates locally; the help channel has no backend yet
func (m *helpModel) submit() {
	m.bannerOK = ""
	m.bannerErr = ""
	if m.sess.location == nil {
		m.bannerErr = "Location unavailable. Enable GPS before submitting the request."
		return
	}
	m.bannerOK = "Emergency team notified with your coordinates."
}

func (m *helpModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Help Request") + "\n\n")

	b.WriteString(m.styles.Subtitle.Render("AUTO-DETECTED") + "\n")
	location := "Awaiting coordinates…"
	if m.sess.location != nil {
		location = spatial.FormatCoordinates(m.sess.location.Latitude, m.sess.location.Longitude)
	}
	b.WriteString(m.styles.Card.Render(
		"Location  " + m.styles.Mono.Render(location) + "\n" +
			"Time      " + m.styles.Mono.Render(m.openedAt.Format("15:04:05")) +
			"  " + m.styles.Hint.Render("local device time")))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("TYPE OF HELP NEEDED *") + "\n")
	var cards []string
	for i, t := range []helpType{helpEmergency, helpTrapped, helpOther} {
		label := fmt.Sprintf("%d. %s", i+1, t.label())
		if t == m.selected {
			cards = append(cards, m.styles.Selected.Render(label))
		} else {
			cards = append(cards, m.styles.Option.Render(label))
		}
	}
	b.WriteString(strings.Join(cards, " ") + "\n\n")

	b.WriteString(m.description.View() + "\n\n")

	if m.bannerOK != "" {
		b.WriteString(m.styles.Success.Render(m.bannerOK) + "\n")
	}
	if m.bannerErr != "" {
		b.WriteString(m.styles.Error.Render(m.bannerErr) + "\n")
	}

	b.WriteString("\n" + m.styles.Hint.Render("1-3: help type · e: details · s: submit · esc: back"))
	return b.String()
}
