package authform

import (
	"fmt"
	"strings"
)

// FieldName identifies one of the form's text fields.
type FieldName string

const (
	Email    FieldName = "email"
	Password FieldName = "password"
)

// State is a snapshot of the form.
type State struct {
	Email    string
	Password string
	Disabled bool // derived: Email or Password is empty
	Loading  bool // a submission is in flight
}

// Initial returns the state every visit of the screen starts from.
func Initial() State {
	return State{Disabled: true}
}

// Form is the single writer of a sign-in State.
type Form struct {
	state State
}

// New creates a form in the initial state.
func New() *Form {
	return &Form{state: Initial()}
}

// State returns a copy of the current state.
func (f *Form) State() State {
	return f.state
}

// Value returns the stored (trimmed) value of the named field.
func (f *Form) Value(name FieldName) string {
	switch name {
	case Email:
		return f.state.Email
	case Password:
		return f.state.Password
	default:
		panic(fmt.Sprintf("authform: unknown field %q", string(name)))
	}
}

// Reset discards all field values and any loading flag.
func (f *Form) Reset() {
	f.state = Initial()
}

// UpdateField stores the trimmed text into the named field and recomputes
// Disabled from the updated values. Loading and the other field are left as
// they are. An unknown field name is a wiring bug and panics.
func (f *Form) UpdateField(name FieldName, raw string) {
	text := strings.TrimSpace(raw)

	switch name {
	case Email:
		f.state.Email = text
	case Password:
		f.state.Password = text
	default:
		panic(fmt.Sprintf("authform: unknown field %q", string(name)))
	}

	f.state.Disabled = disabledFor(f.state.Email, f.state.Password)
}

// CanSubmit reports whether BeginSubmit would succeed.
func (f *Form) CanSubmit() bool {
	return !f.state.Disabled && !f.state.Loading
}

// BeginSubmit marks a submission as in flight. It returns false, and changes
// nothing, when the form is disabled or already loading.
func (f *Form) BeginSubmit() bool {
	if !f.CanSubmit() {
		return false
	}
	f.state.Loading = true
	return true
}

// EndSubmit clears the loading flag. The credential collaborator's completion
// path calls it once per successful BeginSubmit, whatever the outcome.
func (f *Form) EndSubmit() {
	f.state.Loading = false
}

func disabledFor(email, password string) bool {
	return email == "" || password == ""
}

// String renders the state without revealing the password.
func (s State) String() string {
	return fmt.Sprintf("email=%q password=%d chars disabled=%t loading=%t",
		s.Email, len(s.Password), s.Disabled, s.Loading)
}
