package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/signin/internal/authform"
	"github.com/muurk/signin/internal/credentials"
	"github.com/muurk/signin/internal/field"
	"github.com/muurk/signin/internal/signin"
)

// target is what keyboard focus is on. The two fields come first, in the
// order of signin.FieldNames.
type target int

const (
	targetEmail target = iota
	targetPassword
	targetSubmit
	targetSignUp
	targetCount
)

func (t target) isField() bool { return t == targetEmail || t == targetPassword }

func (t target) fieldName() authform.FieldName {
	return signin.FieldNames()[int(t)]
}

func targetFor(name authform.FieldName) target {
	if name == authform.Password {
		return targetPassword
	}
	return targetEmail
}

// submitResultMsg carries the settled result of one attempt back to the loop.
type submitResultMsg struct {
	attempt signin.Attempt
	err     error
}

// signInKeyMap defines key bindings for the sign-in screen
type signInKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Commit key.Binding
	Submit key.Binding
	SignUp key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k signInKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Commit, k.Submit, k.SignUp, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k signInKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Commit},
		{k.Submit, k.SignUp, k.Quit},
	}
}

func newSignInKeyMap() signInKeyMap {
	return signInKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sign in"),
		),
		SignUp: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "sign up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// SignInModel is the sign-in screen. All form state lives in Screen; the
// text inputs only hold what the user typed, raw.
type SignInModel struct {
	Screen  *signin.Screen
	Inputs  []textinput.Model
	Palette field.Palette

	// Status is the outcome of the last attempt, shown under the button
	Status    string
	StatusErr bool

	// SignedIn is the email of the last successful attempt
	SignedIn string

	// UI state
	Width      int
	Height     int
	Spinner    spinner.Model
	Help       help.Model
	Keys       signInKeyMap
	cursorMode cursor.Mode
	target     target
}

// NewSignInModel creates the sign-in screen model around screen.
func NewSignInModel(screen *signin.Screen, palette field.Palette, mode cursor.Mode) SignInModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := SignInModel{
		Screen:     screen,
		Palette:    palette,
		Spinner:    s,
		Help:       help.New(),
		Keys:       newSignInKeyMap(),
		cursorMode: mode,
	}
	m.Inputs = m.newInputs()
	return m
}

func (m SignInModel) newInputs() []textinput.Model {
	inputs := make([]textinput.Model, 0, 2)
	for _, ctrl := range m.Screen.Fields() {
		inputs = append(inputs, newInput(ctrl.Descriptor(), m.cursorMode))
	}
	return inputs
}

// Enter starts a fresh visit of the screen with the email field focused.
func (m SignInModel) Enter() (SignInModel, tea.Cmd) {
	m.Screen.Enter()
	m.Inputs = m.newInputs()
	m.Status, m.StatusErr, m.SignedIn = "", false, ""
	return m.setTarget(targetEmail)
}

// Leave resets the form and clears everything that was typed.
func (m SignInModel) Leave() SignInModel {
	m.Screen.Leave()
	m.Inputs = m.newInputs()
	m.target = targetEmail
	return m
}

// Init initializes the sign-in model
func (m SignInModel) Init() tea.Cmd {
	if m.cursorMode == cursor.CursorBlink {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model
func (m SignInModel) Update(msg tea.Msg) (SignInModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case submitResultMsg:
		if !m.Screen.Finish(msg.attempt, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.Status = credentials.UserMessage(msg.err)
			m.StatusErr = true
		} else {
			m.Status = "Signed in as " + msg.attempt.Email
			m.StatusErr = false
			m.SignedIn = msg.attempt.Email
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Screen.State().Loading {
			return m, nil
		}
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input housekeeping
	if m.target.isField() {
		i := int(m.target)
		m.Inputs[i], cmd = m.Inputs[i].Update(msg)
	}
	return m, cmd
}

func (m SignInModel) handleKey(msg tea.KeyMsg) (SignInModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		return m.setTarget((m.target + 1) % targetCount)

	case key.Matches(msg, m.Keys.Prev):
		return m.setTarget((m.target + targetCount - 1) % targetCount)

	case key.Matches(msg, m.Keys.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.SignUp):
		m.Screen.GoToSignUp()
		return m, nil

	case key.Matches(msg, m.Keys.Commit):
		return m.commit()
	}

	if !m.target.isField() {
		return m, nil
	}

	i := int(m.target)
	before := m.Inputs[i].Value()

	var cmd tea.Cmd
	m.Inputs[i], cmd = m.Inputs[i].Update(msg)

	if after := m.Inputs[i].Value(); after != before {
		m.Screen.Field(m.target.fieldName()).OnChangeText(after)
		m.Status = ""
	}
	return m, cmd
}

// commit runs the commit action of whatever has focus.
func (m SignInModel) commit() (SignInModel, tea.Cmd) {
	switch m.target {
	case targetEmail, targetPassword:
		m.Screen.Field(m.target.fieldName()).Commit()
		var focusCmd tea.Cmd
		m, focusCmd = m.followScreenFocus()
		launchCmd := m.launch(m.Screen.TakePending())
		return m, tea.Batch(focusCmd, launchCmd)

	case targetSubmit:
		return m.submit()

	case targetSignUp:
		m.Screen.GoToSignUp()
	}
	return m, nil
}

// submit is the submission trigger behind the button and ctrl+s.
func (m SignInModel) submit() (SignInModel, tea.Cmd) {
	attempt, ok := m.Screen.Submit()

	var focusCmd tea.Cmd
	m, focusCmd = m.followScreenFocus()
	if !ok {
		return m, focusCmd
	}
	launchCmd := m.launch([]signin.Attempt{attempt})
	return m, tea.Batch(focusCmd, launchCmd)
}

// launch runs each attempt's collaborator off the event loop.
func (m *SignInModel) launch(attempts []signin.Attempt) tea.Cmd {
	if len(attempts) == 0 {
		return nil
	}
	m.Status, m.StatusErr = "", false

	cmds := make([]tea.Cmd, 0, len(attempts)+1)
	for _, a := range attempts {
		cmds = append(cmds, submitCmd(m.Screen, a))
	}
	cmds = append(cmds, m.Spinner.Tick)
	return tea.Batch(cmds...)
}

func submitCmd(screen *signin.Screen, a signin.Attempt) tea.Cmd {
	return func() tea.Msg {
		err := screen.Run(context.Background(), a)
		return submitResultMsg{attempt: a, err: err}
	}
}

// setTarget moves keyboard focus, keeping the field controllers in step.
func (m SignInModel) setTarget(t target) (SignInModel, tea.Cmd) {
	m.target = t
	if t.isField() {
		m.Screen.Focus(t.fieldName())
	} else {
		m.Screen.BlurAll()
	}
	cmd := m.syncInputs()
	return m, cmd
}

// followScreenFocus adopts focus changes made by the screen itself, such as
// the email commit or the blur on submit.
func (m SignInModel) followScreenFocus() (SignInModel, tea.Cmd) {
	if name, ok := m.Screen.FocusedField(); ok {
		m.target = targetFor(name)
	} else if m.target.isField() {
		m.target = targetSubmit
	}
	cmd := m.syncInputs()
	return m, cmd
}

func (m *SignInModel) syncInputs() tea.Cmd {
	var cmds []tea.Cmd
	for i, ctrl := range m.Screen.Fields() {
		cmds = append(cmds, syncInput(ctrl, &m.Inputs[i]))
	}
	return tea.Batch(cmds...)
}

// View renders the sign-in screen
func (m SignInModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m SignInModel) buildContent() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Welcome back"))
	b.WriteString("\n")

	for i, ctrl := range m.Screen.Fields() {
		b.WriteString(renderField(ctrl, m.Inputs[i]))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderButton())
	b.WriteString("\n")

	if m.Status != "" {
		style := SuccessTextStyle
		if m.StatusErr {
			style = ErrorTextStyle
		}
		b.WriteString(style.Render(m.Status))
	}
	b.WriteString("\n\n")

	b.WriteString(RenderRule("OR", FormWidth))
	b.WriteString("\n\n")
	b.WriteString(m.renderSignUpLink())

	return b.String()
}

func (m SignInModel) renderButton() string {
	st := m.Screen.State()
	label := "SIGN IN"
	if st.Loading {
		label = m.Spinner.View() + " Signing in..."
	}
	return ButtonStyle(lipgloss.Color(m.Palette.Accent), st.Disabled, m.target == targetSubmit).Render(label)
}

func (m SignInModel) renderSignUpLink() string {
	style := TextButtonStyle.Width(FormWidth).Align(lipgloss.Center)
	label := "SIGN UP"
	if m.target == targetSignUp {
		style = style.Underline(true).Bold(true)
		label = "› " + label + " ‹"
	}
	return style.Render(label)
}
