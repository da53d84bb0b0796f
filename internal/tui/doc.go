// Package tui implements the terminal user interface of the sign-in tool.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel routes
// messages to the active screen and applies navigation requests between
// updates.
//
// # Screens
//
//   - Sign in: email and password fields, the SIGN IN button and a SIGN UP
//     link. Field colors, icons and button state all come from
//     signin.Screen; the text inputs only capture keystrokes.
//   - Sign up: email, password and confirmation fields. Esc goes back.
//
// Leaving the sign-in screen, for sign-up or on quit, resets its form so no
// credentials are kept between visits.
//
// # Key Bindings
//
//   - tab / shift+tab: move between fields, button and link
//   - enter: email moves to password, password submits, button submits,
//     link opens sign-up
//   - ctrl+s: submit, ctrl+n: sign up, esc / ctrl+c: quit
//
// # Submission
//
// A submission that passes the form guard runs its collaborator inside a
// tea.Cmd. The settled result comes back as a message and ends the
// submission on the event loop. The collaborator is expected to be bounded
// by credentials.WithTimeout.
//
// # Usage Example
//
//	app := tui.NewAppModel(submitter, tui.WithPalette(cfg.FieldPalette()))
//	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
package tui
