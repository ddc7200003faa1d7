package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// learnArticle is one static content-hub entry
type learnArticle struct {
	title string
	body  string
}

var learnArticles = []learnArticle{
	{
		title: "Air defense activity detected near Kyiv outskirts",
		body: "Stay away from windows during active intercepts. Falling debris is\n" +
			"the main danger well outside the impact area.",
	},
	{
		title: "Checkpoint delays reported on Highway M06",
		body: "Carry identification and keep headlights on at dusk. Expect\n" +
			"secondary inspections for vans and trucks.",
	},
	{
		title: "Recognizing micro drones",
		body: "Foldable arms, blinking nav lights, audible buzzing under 30m\n" +
			"altitude. Fixed-wing UAVs show a glider-like silhouette and\n" +
			"persistent contrails at high altitude.",
	},
	{
		title: "First aid basics",
		body: "Check breathing — if unconscious and not breathing, begin CPR with\n" +
			"30 compressions. Control bleeding with direct pressure; use a\n" +
			"tourniquet for severe limb wounds. Immobilize fractures with\n" +
			"makeshift splints.",
	},
	{
		title: "Evacuation corridor confirmed for eastern districts",
		body: "Follow marked routes only. Do not photograph convoy positions or\n" +
			"share corridor timings publicly.",
	},
}

type learnModel struct {
	styles   Styles
	width    int
	height   int
	selected int
	open     bool
}

func newLearnModel(styles Styles) *learnModel {
	return &learnModel{styles: styles}
}

func (m *learnModel) Init() tea.Cmd { return nil }

func (m *learnModel) SetSize(w, h int) { m.width, m.height = w, h }

func (m *learnModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.open {
		switch key.String() {
		case "esc", "enter", "b":
			m.open = false
		}
		return m, nil
	}

	switch key.String() {
	case "esc", "b":
		return m, Navigate(ScreenLanding, NavPayload{})
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(learnArticles)-1 {
			m.selected++
		}
	case "enter":
		m.open = true
	}
	return m, nil
}

func (m *learnModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Learn") + "\n")
	b.WriteString(m.styles.Subtitle.Render("Safety briefings and local updates") + "\n\n")

	if m.open {
		article := learnArticles[m.selected]
		b.WriteString(m.styles.Accent.Render(article.title) + "\n\n")
		b.WriteString(m.styles.Card.Render(article.body))
		b.WriteString("\n\n" + m.styles.Hint.Render("esc: back to list"))
		return b.String()
	}

	for i, article := range learnArticles {
		cursor := "  "
		title := article.title
		if i == m.selected {
			cursor = m.styles.Accent.Render("> ")
			title = m.styles.Title.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
	}
	b.WriteString("\n" + m.styles.Hint.Render("↑/↓: browse · enter: read · esc: back"))
	return b.String()
}
