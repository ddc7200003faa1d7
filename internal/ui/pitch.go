package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// pitchSlide is one static deck page
type pitchSlide struct {
	title string
	body  string
}

var pitchSlides = []pitchSlide{
	{
		title: "The Problem",
		body: "Critical Communication Gap\n\n" +
			"Civilians witness threats first, but their observations rarely reach\n" +
			"defenders in time. Emergency hotlines are overloaded, unverified\n" +
			"socialposts are noisy, and precious minutes are lost.",
	},
	{
		title: "How ThreatLink Works",
		body: "Three Simple Steps\n\n" +
			"1. See something — pick a threat type in two taps.\n" +
			"2. Point your device — direction and location are captured from\n" +
			"   the sensors, no typing needed.\n" +
			"3. Send — the report lands in the shared operational picture.",
	},
	{
		title: "Key Benefits",
		body: "Why ThreatLink\n\n" +
			"· Seconds from sighting to report\n" +
			"· Structured data instead of free-form noise\n" +
			"· Clustered heatmaps surface real activity over one-off sightings",
	},
	{
		title: "Technical Architecture",
		body: "System Architecture\n\n" +
			"Thin clients capture reports; a hosted database stores them; a\n" +
			"clustering backend scores severity and serves heatmaps. The client\n" +
			"stays dumb on purpose — everything heavy is server-side.",
	},
}

type pitchModel struct {
	styles Styles
	width  int
	height int
	slide  int
}

func newPitchModel(styles Styles) *pitchModel {
	return &pitchModel{styles: styles}
}

func (m *pitchModel) Init() tea.Cmd { return nil }

func (m *pitchModel) SetSize(w, h int) { m.width, m.height = w, h }

func (m *pitchModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "b":
			return m, Navigate(ScreenLanding, NavPayload{})
		case "right", "n", " ":
			if m.slide < len(pitchSlides)-1 {
				m.slide++
			}
		case "left", "p":
			if m.slide > 0 {
				m.slide--
			}
		}
	}
	return m, nil
}

func (m *pitchModel) View() string {
	slide := pitchSlides[m.slide]
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("ThreatLink Pitch") + "  ")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d/%d · %s",
		m.slide+1, len(pitchSlides), slide.title)) + "\n\n")
	b.WriteString(m.styles.Card.Render(slide.body))
	b.WriteString("\n\n" + m.styles.Hint.Render("←/→: slides · esc: back"))
	return b.String()
}
