package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
	}

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(dir, "signin") {
		t.Errorf("GetConfigDir() = %v, should contain 'signin'", dir)
	}

	if runtime.GOOS == "linux" && dir != filepath.Join("/xdg", "signin") {
		t.Errorf("GetConfigDir() = %v, want /xdg/signin", dir)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.Auth.Mode != AuthModeLocal {
		t.Errorf("Auth.Mode = %q, want %q", cfg.Auth.Mode, AuthModeLocal)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout() = %v, want 15s", cfg.Timeout())
	}
	p := cfg.FieldPalette()
	if p.Accent != "#F97316" || p.Neutral != "#6B7280" {
		t.Errorf("FieldPalette() = %+v", p)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Palette != Default().Palette {
		t.Errorf("Palette = %+v, want defaults", cfg.Palette)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Palette.Accent = "#112233"
	cfg.Auth.Mode = AuthModeHTTP
	cfg.Auth.Endpoint = "https://auth.example.com/v1/sessions"
	cfg.Auth.TimeoutSeconds = 5
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "version: 1\nlogging:\n  level: info\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Palette.Accent != "#F97316" {
		t.Errorf("Palette.Accent = %q, want default", cfg.Palette.Accent)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "version: [1"},
		{name: "wrong version", data: "version: 2\n"},
		{name: "bad color", data: "version: 1\npalette:\n  accent: orange\n"},
		{name: "bad mode", data: "version: 1\nauth:\n  mode: ldap\n"},
		{name: "http without endpoint", data: "version: 1\nauth:\n  mode: http\n"},
		{name: "bad endpoint", data: "version: 1\nauth:\n  mode: http\n  endpoint: not a url\n"},
		{name: "zero timeout", data: "version: 1\nauth:\n  timeout_seconds: 0\n"},
		{name: "bad log level", data: "version: 1\nlogging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestAccountsPath(t *testing.T) {
	cfg := Default()
	cfg.Auth.AccountsFile = "/srv/accounts.yaml"

	got, err := cfg.AccountsPath()
	if err != nil {
		t.Fatalf("AccountsPath() error = %v", err)
	}
	if got != "/srv/accounts.yaml" {
		t.Errorf("AccountsPath() = %q, want /srv/accounts.yaml", got)
	}

	cfg.Auth.AccountsFile = ""
	got, err = cfg.AccountsPath()
	if err != nil {
		t.Fatalf("AccountsPath() error = %v", err)
	}
	if filepath.Base(got) != "accounts.yaml" {
		t.Errorf("AccountsPath() = %q, want default accounts.yaml", got)
	}
}
