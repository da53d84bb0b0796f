package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/signin/internal/field"
	"github.com/muurk/signin/internal/logging"
	"github.com/muurk/signin/internal/signin"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenSignIn Screen = "signin"
	ScreenSignUp Screen = "signup"
)

var routeScreens = map[signin.Route]Screen{
	signin.RouteSignIn: ScreenSignIn,
	signin.RouteSignUp: ScreenSignUp,
}

// router collects navigation requests made while handling a message. The
// app applies them once the active screen is done updating.
type router struct {
	pending []signin.Route
}

func (r *router) NavigateTo(route signin.Route) {
	r.pending = append(r.pending, route)
}

func (r *router) take() []signin.Route {
	p := r.pending
	r.pending = nil
	return p
}

// Option configures an AppModel.
type Option func(*options)

type options struct {
	palette     field.Palette
	cursorMode  cursor.Mode
	stayOnEntry bool
}

// WithPalette sets the field colors.
func WithPalette(p field.Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithStaticCursor disables cursor blinking.
func WithStaticCursor() Option {
	return func(o *options) { o.cursorMode = cursor.CursorStatic }
}

// WithStay keeps the application open after a successful sign-in.
func WithStay() Option {
	return func(o *options) { o.stayOnEntry = true }
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	SignInModel SignInModel
	SignUpModel SignUpModel

	// SignedIn is set when a sign-in succeeded
	SignedIn string

	Width  int
	Height int

	router *router
	opts   options
}

// NewAppModel creates the application with the sign-in screen active.
func NewAppModel(submitter signin.Submitter, opts ...Option) AppModel {
	o := options{palette: field.DefaultPalette(), cursorMode: cursor.CursorBlink}
	for _, opt := range opts {
		opt(&o)
	}

	r := &router{}
	screen := signin.New(submitter, r, o.palette)

	m := AppModel{
		CurrentScreen: ScreenSignIn,
		SignInModel:   NewSignInModel(screen, o.palette, o.cursorMode),
		router:        r,
		opts:          o,
	}
	m.SignInModel, _ = m.SignInModel.Enter()
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.SignInModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.SignInModel.Width, m.SignInModel.Height = msg.Width, msg.Height
		m.SignInModel.Help.Width = msg.Width
		m.SignUpModel.Width, m.SignUpModel.Height = msg.Width, msg.Height
		m.SignUpModel.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

	case submitResultMsg:
		// Results belong to the sign-in screen whichever screen is showing.
		var cmd tea.Cmd
		m.SignInModel, cmd = m.SignInModel.Update(msg)
		if m.SignInModel.SignedIn != "" && !m.opts.stayOnEntry {
			m.SignedIn = m.SignInModel.SignedIn
			return m.quit()
		}
		return m, cmd
	}

	return m.updateCurrentScreen(msg)
}

func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenSignIn:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			return m.quit()
		}
		m.SignInModel, cmd = m.SignInModel.Update(msg)

	case ScreenSignUp:
		m.SignUpModel, cmd = m.SignUpModel.Update(msg)
	}

	for _, route := range m.router.take() {
		var navCmd tea.Cmd
		m, navCmd = m.transitionTo(routeScreens[route])
		cmd = tea.Batch(cmd, navCmd)
	}

	return m, cmd
}

// transitionTo switches screens. Leaving the sign-in screen resets its form.
func (m AppModel) transitionTo(screen Screen) (AppModel, tea.Cmd) {
	if screen == "" || screen == m.CurrentScreen {
		return m, nil
	}

	logging.LogNavigation(string(m.CurrentScreen), string(screen))

	if m.CurrentScreen == ScreenSignIn {
		m.SignInModel = m.SignInModel.Leave()
	}

	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	var cmd tea.Cmd
	switch screen {
	case ScreenSignIn:
		m.SignInModel, cmd = m.SignInModel.Enter()
	case ScreenSignUp:
		m.SignUpModel = NewSignUpModel(m.router, m.opts.palette, m.opts.cursorMode)
		m.SignUpModel.Width, m.SignUpModel.Height = m.Width, m.Height
		cmd = m.SignUpModel.Init()
	}
	return m, cmd
}

// quit leaves the current screen, so no credentials outlive the program, and exits.
func (m AppModel) quit() (tea.Model, tea.Cmd) {
	if m.CurrentScreen == ScreenSignIn {
		m.SignInModel = m.SignInModel.Leave()
	}
	return m, tea.Quit
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenSignIn:
		return m.SignInModel.View()
	case ScreenSignUp:
		return m.SignUpModel.View()
	default:
		return "Unknown screen"
	}
}
