// Package logging provides structured logging for the sign-in tool.
//
// This package wraps a global zap logger with convenience functions and a few
// domain helpers. Logging is silent unless a level is chosen through
// SIGNIN_LOG_LEVEL, the config file or the --log-level flag.
//
// # Log Levels
//
//   - Debug: every form transition
//   - Info: navigation, successful submissions
//   - Warn: failed submissions
//   - Error: startup failures
//
// # Credentials
//
// Passwords never reach the log. LogTransition records only the password
// length and LogSubmission records only the email and attempt id:
//
//	logging.LogSubmission(attempt.ID, attempt.Email, err)
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/signin.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialized.
package logging
