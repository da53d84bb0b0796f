// Package config provides the YAML configuration file of the sign-in tool.
//
// The file selects the color palette of the form, how credentials are
// submitted, and where logs go. A missing file is not an error: Load returns
// Default().
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/signin/config.yaml or $HOME/.config/signin/config.yaml
//   - macOS: $HOME/.config/signin/config.yaml
//   - Windows: %LOCALAPPDATA%\signin\config.yaml
//
// # Example
//
//	version: 1
//	palette:
//	  accent: "#F97316"
//	  neutral: "#6B7280"
//	auth:
//	  mode: http
//	  endpoint: https://auth.example.com/v1/sessions
//	  timeout_seconds: 15
//	logging:
//	  level: debug
//	  file: /tmp/signin.log
//
// # Security
//
// Passwords are never written to this file. Local mode points at a separate
// accounts file holding bcrypt hashes only.
package config
