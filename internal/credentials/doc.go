// Package credentials implements the collaborators that receive the
// credentials typed into the sign-in form.
//
// Two submitters are provided:
//   - HTTPSubmitter posts the credentials as JSON to an authentication
//     endpoint.
//   - LocalSubmitter checks them against a YAML file of bcrypt hashes,
//     which is handy for demos and offline use.
//
// Both settle exactly once per call. WithTimeout bounds any submitter so
// that a hung endpoint still settles, with ErrTimeout:
//
//	s := credentials.WithTimeout(credentials.NewHTTPSubmitter(url), 15*time.Second)
//	err := s.Submit(ctx, email, password)
//
// Errors are *Error values carrying an ErrorType, or the sentinel errors
// ErrInvalidCredentials and ErrTimeout (match with errors.Is).
package credentials
