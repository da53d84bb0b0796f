package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/signin/internal/field"
)

// maxEmailLength is the longest address RFC 5321 allows.
const maxEmailLength = 254

// newInput builds the text input surface for a field descriptor.
func newInput(desc field.Descriptor, mode cursor.Mode) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = desc.Placeholder
	in.Width = InputWidth
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(GrayDarkColor)
	in.Cursor.SetMode(mode)

	if desc.Keyboard == field.KeyboardEmail {
		in.CharLimit = maxEmailLength
	}
	if desc.Masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// renderField draws title, icon and input in the colors of the field's
// visual state.
func renderField(ctrl *field.Controller, in textinput.Model) string {
	v := ctrl.VisualState()
	color := lipgloss.Color(v.Color)

	title := FieldTitleStyle.Foreground(color).Render(ctrl.Descriptor().Title)

	in.TextStyle = lipgloss.NewStyle().Foreground(color)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(color)
	icon := lipgloss.NewStyle().Foreground(color).Render(IconGlyph(v.Icon))

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(color).
		Width(FormWidth).
		Render(icon + "  " + in.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}

// syncInput makes the input's focus match the controller's.
func syncInput(ctrl *field.Controller, in *textinput.Model) tea.Cmd {
	if ctrl.Focused() {
		if !in.Focused() {
			return in.Focus()
		}
		return nil
	}
	in.Blur()
	return nil
}
