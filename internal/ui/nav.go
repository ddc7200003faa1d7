package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies one of the client's screens
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenReport
	ScreenCapture
	ScreenConfirmation
	ScreenDashboard
	ScreenHeatmap2
	ScreenPitch
	ScreenLearn
	ScreenHelp
)

// Route returns the screen's route string. The mapping is exhaustive; any
// screen value outside the enum falls back to the landing route.
func (s Screen) Route() string {
	switch s {
	case ScreenLanding:
		return "/"
	case ScreenReport:
		return "/report"
	case ScreenCapture:
		return "/report/capture"
	case ScreenConfirmation:
		return "/report/confirmation"
	case ScreenDashboard:
		return "/dashboard"
	case ScreenHeatmap2:
		return "/heatmap2"
	case ScreenPitch:
		return "/pitch"
	case ScreenLearn:
		return "/learn"
	case ScreenHelp:
		return "/help"
	}
	return "/"
}

// ScreenForRoute resolves a route string; unmatched routes redirect to landing
func ScreenForRoute(route string) Screen {
	switch route {
	case "/":
		return ScreenLanding
	case "/report":
		return ScreenReport
	case "/report/capture":
		return ScreenCapture
	case "/report/confirmation":
		return ScreenConfirmation
	case "/dashboard":
		return ScreenDashboard
	case "/heatmap2":
		return ScreenHeatmap2
	case "/pitch":
		return ScreenPitch
	case "/learn":
		return ScreenLearn
	case "/help":
		return ScreenHelp
	}
	return ScreenLanding
}

// NavPayload carries ephemeral cross-screen data. It travels inside the
// navigation message and is handed to the destination exactly once, never
// parked in shared state.
type NavPayload struct {
	ReportID      string // confirmation screen
	PhotoCaptured bool   // capture screen -> report form
	PhotoError    string // capture screen -> report form
}

// navigateMsg asks the root model to switch screens
type navigateMsg struct {
	screen  Screen
	payload NavPayload
}

// Navigate produces the command that transitions to the given screen
func Navigate(screen Screen, payload NavPayload) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{screen: screen, payload: payload}
	}
}
