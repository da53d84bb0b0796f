// Package signin coordinates the sign-in screen: one form state machine, the
// email and password field controllers bound to it, the submission trigger
// and navigation to sign-up.
//
// The screen is driven from a single event loop. Submission is split in two
// so the loop never blocks on the network:
//
//	attempt, ok := screen.Submit()      // guard + BEGIN_SUBMIT, on the loop
//	if ok {
//	    go func() {
//	        err := screen.Run(ctx, attempt) // collaborator, off the loop
//	        loop <- func() { screen.Finish(attempt, err) } // END_SUBMIT, on the loop
//	    }()
//	}
//
// SubmitAndWait does all three in place for callers without an event loop.
package signin
