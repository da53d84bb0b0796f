// Package authform holds the sign-in form state machine.
//
// A Form owns a single State value and exposes the only transitions allowed
// to mutate it:
//
//	form := authform.New()          // ("", "", disabled, idle)
//	form.UpdateField(authform.Email, "  a@b.com ")
//	form.UpdateField(authform.Password, "secret")
//	if form.BeginSubmit() {
//	    // hand (email, password) to the credential collaborator
//	    form.EndSubmit()
//	}
//	form.Reset()                    // screen lost focus
//
// Disabled is always derived from the two field values and is recomputed on
// every field update. BeginSubmit is guarded: when the form is disabled or a
// submission is already in flight it does nothing and reports false.
//
// A Form is not safe for concurrent use. It is owned by one screen and
// driven from a single event loop.
package authform
