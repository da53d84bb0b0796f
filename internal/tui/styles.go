package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/signin/internal/version"
)

// Application branding constants
const (
	AppName = "SIGN IN"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	FormWidth        = 44 // Width of the form column
	InputWidth       = 34 // Visible characters of a text input
)

// Color palette
var (
	WhiteColor        = lipgloss.Color("#FFFFFF")
	BlackColor        = lipgloss.Color("#000000")
	PrimaryLightColor = lipgloss.Color("#FDBA74")
	PrimaryColor      = lipgloss.Color("#F97316")
	PrimaryDarkColor  = lipgloss.Color("#C2410C")
	GrayDarkColor     = lipgloss.Color("#6B7280")
	ErrorColor        = lipgloss.Color("#EF4444")
	SuccessColor      = lipgloss.Color("#22C55E")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(GrayDarkColor).
			Italic(true)

	FieldTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(0)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	TextButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryDarkColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// iconGlyphs maps field icon identifiers to terminal glyphs.
var iconGlyphs = map[string]string{
	"email":         "●",
	"email-outline": "○",
	"lock":          "■",
	"lock-outline":  "□",
}

// IconGlyph returns the glyph for an icon identifier, or "?" when unknown.
func IconGlyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "?"
}

// ButtonStyle styles the submit button.
func ButtonStyle(accent lipgloss.Color, disabled, focused bool) lipgloss.Style {
	bg := accent
	if disabled {
		bg = PrimaryLightColor
	}
	s := lipgloss.NewStyle().
		Foreground(WhiteColor).
		Background(bg).
		Bold(true).
		Width(FormWidth).
		Align(lipgloss.Center).
		Padding(0, 1)
	if focused {
		s = s.Underline(true)
	}
	return s
}

// RenderRule renders a horizontal rule with text in the middle.
func RenderRule(text string, width int) string {
	side := (width - lipgloss.Width(text) - 2) / 2
	if side < 1 {
		side = 1
	}
	line := lipgloss.NewStyle().Foreground(GrayDarkColor)
	bar := line.Render(strings.Repeat("─", side))
	return bar + " " + line.Render(text) + " " + bar
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	return lipgloss.NewStyle().
		Foreground(WhiteColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())
}

// RenderApplicationContainer wraps every screen with the header and a
// footer holding the context help. Without a known terminal size the content
// is returned with header and footer only.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := lipgloss.NewStyle().Foreground(GrayDarkColor).Render(footerText)

	if terminalWidth < MinTerminalWidth || terminalHeight <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", footer)
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 2)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
