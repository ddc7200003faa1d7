package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/client"
	"github.com/b1s/threatlink-client/internal/config"
	"github.com/b1s/threatlink-client/internal/models"
	"github.com/b1s/threatlink-client/internal/report"
	"github.com/b1s/threatlink-client/internal/sensor"
	"github.com/b1s/threatlink-client/internal/storage"
)

// Deps wires the screens to the services and providers they compose
type Deps struct {
	Cfg         *config.Config
	Log         *zap.Logger
	Backend     *client.Backend
	Submit      *report.Service
	Drafts      *report.DraftStore
	Locations   *storage.LocationStore
	LocProvider sensor.LocationProvider
	Orientation sensor.OrientationProvider
}

// session is screen-shared state. The location is owned by whichever screen
// first resolves it; confirming locks it for submission. photoCaptured
// follows the draft lifecycle: a successful upload or camera capture sets it,
// a successful submission clears it.
type session struct {
	location      *models.GeoLocation
	confirmed     bool
	photoCaptured bool
}

// App is the root model: it renders the active screen and owns transitions
type App struct {
	deps    Deps
	styles  Styles
	sess    *session
	width   int
	height  int
	current Screen
	active  screenModel
}

// screenModel is what every screen implements. Update returns the replacement
// model so screens stay value types in the bubbletea style.
type screenModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (screenModel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// NewApp creates the root model on the landing screen
func NewApp(deps Deps) *App {
	app := &App{
		deps:   deps,
		styles: DefaultStyles(),
		sess:   &session{},
	}
	app.current = ScreenLanding
	app.active = newLandingModel(deps, app.sess, app.styles)
	return app
}

// Init starts the landing screen
func (a *App) Init() tea.Cmd {
	return a.active.Init()
}

// Update routes messages: navigation and window size are handled here, all
// else goes to the active screen
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.active.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case navigateMsg:
		return a.transition(msg)
	}

	var cmd tea.Cmd
	a.active, cmd = a.active.Update(msg)
	return a, cmd
}

// View renders the active screen
func (a *App) View() string {
	return a.active.View()
}

// transition swaps in the destination screen, handing it the payload once
func (a *App) transition(msg navigateMsg) (tea.Model, tea.Cmd) {
	if closer, ok := a.active.(interface{ teardown() }); ok {
		closer.teardown()
	}

	a.current = msg.screen
	switch msg.screen {
	case ScreenReport:
		a.active = newReportModel(a.deps, a.sess, a.styles, msg.payload)
	case ScreenCapture:
		a.active = newCaptureModel(a.deps, a.styles)
	case ScreenConfirmation:
		a.active = newConfirmationModel(a.styles, msg.payload.ReportID)
	case ScreenDashboard:
		a.active = newDashboardModel(a.deps, a.styles)
	case ScreenHeatmap2:
		a.active = newHeatmap2Model(a.deps, a.sess, a.styles)
	case ScreenPitch:
		a.active = newPitchModel(a.styles)
	case ScreenLearn:
		a.active = newLearnModel(a.styles)
	case ScreenHelp:
		a.active = newHelpModel(a.sess, a.styles)
	default:
		// Unknown screens fall back to landing
		a.current = ScreenLanding
		a.active = newLandingModel(a.deps, a.sess, a.styles)
	}

	a.active.SetSize(a.width, a.height)
	return a, a.active.Init()
}
