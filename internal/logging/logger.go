package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SIGNIN_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks SIGNIN_LOG_LEVEL. If neither is set, logging
// is disabled (silent mode). An empty path writes to stderr.
//
// The sign-in screen takes over the terminal, so interactive runs should
// always pass a file path.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	output := "stderr"
	if path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// ValidLevel reports whether level is accepted by Initialize. The empty
// string (silent) is valid.
func ValidLevel(level string) bool {
	if level == "" {
		return true
	}
	_, err := parseLevel(level)
	return err == nil
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a form state machine transition. The password is
// reduced to its length.
func LogTransition(name string, email string, passwordLen int, disabled, loading bool) {
	Debug("Form transition",
		zap.String("transition", name),
		zap.String("email", email),
		zap.Int("password_len", passwordLen),
		zap.Bool("disabled", disabled),
		zap.Bool("loading", loading),
	)
}

// LogSubmission logs the outcome of a credential submission.
func LogSubmission(attemptID string, email string, err error) {
	fields := []zap.Field{
		zap.String("attempt_id", attemptID),
		zap.String("email", email),
	}
	if err != nil {
		Warn("Submission failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Submission succeeded", fields...)
}

// LogNavigation logs a route change.
func LogNavigation(from, to string) {
	Info("Navigation",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
