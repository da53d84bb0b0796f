package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("silent logger has error level enabled")
	}
}

func TestInitialize_UnknownLevel(t *testing.T) {
	if err := Initialize("chatty", ""); err == nil {
		t.Error("Initialize(\"chatty\") error = nil, want error")
	}
}

func TestInitialize_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signin.log")
	if err := Initialize("info", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"", "debug", "info", "warn", "error"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false, want true", lvl)
		}
	}
	if ValidLevel("trace") {
		t.Error("ValidLevel(\"trace\") = true, want false")
	}
}

func TestLogTransition_OmitsPassword(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogTransition("UPDATE_FIELD", "a@b.com", 6, false, false)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["password_len"] != int64(6) {
		t.Errorf("password_len = %v, want 6", ctx["password_len"])
	}
	if _, ok := ctx["password"]; ok {
		t.Error("entry carries a password field")
	}
}

func TestLogSubmission_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogSubmission("id-1", "a@b.com", nil)
	LogSubmission("id-2", "a@b.com", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("success level = %v, want info", entries[0].Level)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("failure level = %v, want warn", entries[1].Level)
	}
}
