package signin

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/signin/internal/authform"
	"github.com/muurk/signin/internal/field"
	"github.com/muurk/signin/internal/logging"
)

// Route identifies a screen reachable by navigation.
type Route string

const (
	RouteSignIn Route = "SignIn"
	RouteSignUp Route = "SignUp"
)

// Navigator moves the application to another screen.
type Navigator interface {
	NavigateTo(route Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route Route)

// NavigateTo calls f.
func (f NavigatorFunc) NavigateTo(route Route) { f(route) }

// Submitter receives the credentials of one submission and settles once.
type Submitter interface {
	Submit(ctx context.Context, email, password string) error
}

// Attempt is one submission that passed the guard.
type Attempt struct {
	ID       string
	Email    string
	Password string
}

// Screen owns the form of a sign-in screen and its two field controllers.
type Screen struct {
	form      *authform.Form
	email     *field.Controller
	password  *field.Controller
	submitter Submitter
	nav       Navigator

	inflight string    // ID of the attempt Finish will accept
	pending  []Attempt // attempts started by committing the password field
}

// New creates a screen in its initial state. The email field commits by
// moving focus to the password field; the password field commits by
// submitting.
func New(submitter Submitter, nav Navigator, palette field.Palette) *Screen {
	s := &Screen{
		form:      authform.New(),
		submitter: submitter,
		nav:       nav,
	}

	s.email = field.NewController(field.Email, s.bind(authform.Email),
		field.WithPalette(palette),
		field.WithCommit(field.CommitNext, func() { s.Focus(authform.Password) }),
	)
	s.password = field.NewController(field.Password, s.bind(authform.Password),
		field.WithPalette(palette),
		field.WithCommit(field.CommitDone, func() {
			if a, ok := s.Submit(); ok {
				s.pending = append(s.pending, a)
			}
		}),
	)

	return s
}

// State returns a snapshot of the form.
func (s *Screen) State() authform.State { return s.form.State() }

// Field returns the controller bound to name.
func (s *Screen) Field(name authform.FieldName) *field.Controller {
	switch name {
	case authform.Email:
		return s.email
	case authform.Password:
		return s.password
	default:
		panic("signin: unknown field " + string(name))
	}
}

// Fields returns the controllers in display order.
func (s *Screen) Fields() []*field.Controller {
	return []*field.Controller{s.email, s.password}
}

// FieldNames returns the field names in display order.
func FieldNames() []authform.FieldName {
	return []authform.FieldName{authform.Email, authform.Password}
}

// Focus gives focus to one field and takes it from the other.
func (s *Screen) Focus(name authform.FieldName) {
	for _, n := range FieldNames() {
		if n == name {
			s.Field(n).OnFocus()
		} else {
			s.Field(n).OnBlur()
		}
	}
}

// BlurAll removes focus from every field.
func (s *Screen) BlurAll() {
	s.email.OnBlur()
	s.password.OnBlur()
}

// FocusedField returns the focused field, if any.
func (s *Screen) FocusedField() (authform.FieldName, bool) {
	for _, n := range FieldNames() {
		if s.Field(n).Focused() {
			return n, true
		}
	}
	return "", false
}

// Enter is called when the screen gains focus. Every visit starts from the
// initial form state.
func (s *Screen) Enter() {
	s.reset("ENTER")
}

// Leave is called when the screen loses focus. It discards the credentials
// and forgets any in-flight attempt.
func (s *Screen) Leave() {
	s.reset("RESET")
}

func (s *Screen) reset(transition string) {
	s.form.Reset()
	s.BlurAll()
	s.inflight = ""
	s.pending = nil
	s.logTransition(transition)
}

// Submit dismisses focus and, when the guard passes, begins a submission.
// It returns false without side effects on the form otherwise.
func (s *Screen) Submit() (Attempt, bool) {
	s.BlurAll()

	if !s.form.BeginSubmit() {
		logging.Debug("Submit ignored", zap.Stringer("state", s.form.State()))
		return Attempt{}, false
	}

	st := s.form.State()
	a := Attempt{
		ID:       uuid.NewString(),
		Email:    st.Email,
		Password: st.Password,
	}
	s.inflight = a.ID
	s.logTransition("BEGIN_SUBMIT")
	return a, true
}

// TakePending returns and clears the attempts started by committing the
// password field.
func (s *Screen) TakePending() []Attempt {
	p := s.pending
	s.pending = nil
	return p
}

// Run hands the attempt to the credential collaborator. It does not touch
// the form and may be called off the event loop.
func (s *Screen) Run(ctx context.Context, a Attempt) error {
	err := s.submitter.Submit(ctx, a.Email, a.Password)
	logging.LogSubmission(a.ID, a.Email, err)
	return err
}

// Finish ends the attempt. Results of attempts from an earlier visit are
// ignored and Finish reports false for them.
func (s *Screen) Finish(a Attempt, err error) bool {
	if a.ID == "" || a.ID != s.inflight {
		logging.Debug("Stale submission result ignored", zap.String("attempt_id", a.ID))
		return false
	}
	s.inflight = ""
	s.form.EndSubmit()
	s.logTransition("END_SUBMIT")
	return true
}

// SubmitAndWait runs a whole submission in place. It returns false when the
// guard failed and the collaborator was not called.
func (s *Screen) SubmitAndWait(ctx context.Context) (bool, error) {
	a, ok := s.Submit()
	if !ok {
		return false, nil
	}
	err := s.Run(ctx, a)
	s.Finish(a, err)
	return true, err
}

// GoToSignUp navigates to the sign-up screen.
func (s *Screen) GoToSignUp() {
	s.nav.NavigateTo(RouteSignUp)
}

func (s *Screen) bind(name authform.FieldName) field.Binding {
	return formBinding{screen: s, name: name}
}

func (s *Screen) logTransition(name string) {
	st := s.form.State()
	logging.LogTransition(name, st.Email, len(st.Password), st.Disabled, st.Loading)
}

// formBinding routes a controller's input into UPDATE_FIELD.
type formBinding struct {
	screen *Screen
	name   authform.FieldName
}

func (b formBinding) Value() string {
	return b.screen.form.Value(b.name)
}

func (b formBinding) Change(raw string) {
	b.screen.form.UpdateField(b.name, raw)
	b.screen.logTransition("UPDATE_FIELD")
}
