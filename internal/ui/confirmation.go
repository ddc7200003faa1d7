package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmationModel struct {
	styles   Styles
	reportID string
	width    int
	height   int
}

func newConfirmationModel(styles Styles, reportID string) *confirmationModel {
	if reportID == "" {
		reportID = "A1B2C3"
	}
	return &confirmationModel{styles: styles, reportID: reportID}
}

func (m *confirmationModel) Init() tea.Cmd { return nil }

func (m *confirmationModel) SetSize(w, h int) { m.width, m.height = w, h }

func (m *confirmationModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", "h":
			return m, Navigate(ScreenLanding, NavPayload{})
		}
	}
	return m, nil
}

func (m *confirmationModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Success.Render("✔ Thank You!") + "\n\n")
	b.WriteString("Your report has been shared with emergency authorities.\n\n")
	b.WriteString(m.styles.Card.Render(
		m.styles.Subtitle.Render("Your report ID:") + "\n" +
			m.styles.Accent.Render("#"+m.reportID)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render(
		"Your report is being reviewed by command personnel and will be acted upon immediately."))
	b.WriteString("\n\n" + m.styles.Hint.Render("enter: back to home"))
	return b.String()
}
