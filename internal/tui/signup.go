package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/signin/internal/field"
	"github.com/muurk/signin/internal/signin"
)

// textBinding keeps a field value local to the sign-up screen.
type textBinding struct {
	value string
}

func (b *textBinding) Value() string { return b.value }

func (b *textBinding) Change(raw string) { b.value = strings.TrimSpace(raw) }

// signUpKeyMap defines key bindings for the sign-up screen
type signUpKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k signUpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k signUpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Back}}
}

// SignUpModel is the screen reached from the sign-in screen. It shows the
// email, password and confirmation fields; account creation itself happens
// through 'signin add-account'.
type SignUpModel struct {
	Fields []*field.Controller
	Inputs []textinput.Model

	Width  int
	Height int
	Help   help.Model
	Keys   signUpKeyMap

	nav     signin.Navigator
	focused int
}

// NewSignUpModel creates the sign-up screen with the email field focused.
func NewSignUpModel(nav signin.Navigator, palette field.Palette, mode cursor.Mode) SignUpModel {
	m := SignUpModel{
		Help: help.New(),
		Keys: signUpKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down", "enter"),
				key.WithHelp("tab", "next"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab", "previous"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back to sign in"),
			),
		},
		nav: nav,
	}

	for _, t := range field.Types() {
		ctrl := field.NewController(t, &textBinding{}, field.WithPalette(palette), field.WithCommit(field.CommitNext, nil))
		m.Fields = append(m.Fields, ctrl)
		m.Inputs = append(m.Inputs, newInput(ctrl.Descriptor(), mode))
	}

	m.Fields[0].OnFocus()
	m.Inputs[0].Focus()
	return m
}

// Init initializes the sign-up model
func (m SignUpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m SignUpModel) Update(msg tea.Msg) (SignUpModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			m.nav.NavigateTo(signin.RouteSignIn)
			return m, nil
		case key.Matches(msg, m.Keys.Next):
			return m.focus((m.focused + 1) % len(m.Fields))
		case key.Matches(msg, m.Keys.Prev):
			return m.focus((m.focused + len(m.Fields) - 1) % len(m.Fields))
		}

		before := m.Inputs[m.focused].Value()
		m.Inputs[m.focused], cmd = m.Inputs[m.focused].Update(msg)
		if after := m.Inputs[m.focused].Value(); after != before {
			m.Fields[m.focused].OnChangeText(after)
		}
		return m, cmd
	}

	m.Inputs[m.focused], cmd = m.Inputs[m.focused].Update(msg)
	return m, cmd
}

func (m SignUpModel) focus(i int) (SignUpModel, tea.Cmd) {
	m.focused = i
	var cmds []tea.Cmd
	for j, ctrl := range m.Fields {
		if j == i {
			ctrl.OnFocus()
		} else {
			ctrl.OnBlur()
		}
		cmds = append(cmds, syncInput(ctrl, &m.Inputs[j]))
	}
	return m, tea.Batch(cmds...)
}

// PasswordsMatch reports whether both password fields are filled in and equal.
func (m SignUpModel) PasswordsMatch() bool {
	pw, confirm := m.Fields[1].Value(), m.Fields[2].Value()
	return pw != "" && pw == confirm
}

// View renders the sign-up screen
func (m SignUpModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Create an account"))
	b.WriteString("\n")

	for i, ctrl := range m.Fields {
		b.WriteString(renderField(ctrl, m.Inputs[i]))
		b.WriteString("\n\n")
	}

	if m.Fields[2].Value() != "" && !m.PasswordsMatch() {
		b.WriteString(ErrorTextStyle.Render("Passwords do not match"))
		b.WriteString("\n\n")
	}

	b.WriteString(SubtitleStyle.Render("Accounts are created with 'signin add-account <email>'."))

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
