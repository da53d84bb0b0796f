package config

import (
	"time"

	"github.com/muurk/signin/internal/field"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Auth modes.
const (
	AuthModeLocal = "local"
	AuthModeHTTP  = "http"
)

// DefaultTimeoutSeconds bounds every credential submission.
const DefaultTimeoutSeconds = 15

// Config is the whole configuration file.
type Config struct {
	Version int           `yaml:"version"`
	Palette PaletteConfig `yaml:"palette"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// PaletteConfig holds the accent and neutral colors of the form fields.
type PaletteConfig struct {
	Accent  string `yaml:"accent" validate:"required,hexcolor"`
	Neutral string `yaml:"neutral" validate:"required,hexcolor"`
}

// AuthConfig selects and configures the credential collaborator.
type AuthConfig struct {
	Mode           string `yaml:"mode" validate:"oneof=local http"`
	Endpoint       string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"min=1,max=300"`
	AccountsFile   string `yaml:"accounts_file,omitempty"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	p := field.DefaultPalette()
	return &Config{
		Version: CurrentVersion,
		Palette: PaletteConfig{
			Accent:  p.Accent,
			Neutral: p.Neutral,
		},
		Auth: AuthConfig{
			Mode:           AuthModeLocal,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// FieldPalette converts the palette section for the field controllers.
func (c *Config) FieldPalette() field.Palette {
	return field.Palette{Accent: c.Palette.Accent, Neutral: c.Palette.Neutral}
}

// Timeout returns the submission timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Auth.TimeoutSeconds) * time.Second
}
