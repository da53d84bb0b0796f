package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/signin/internal/config"
	"github.com/muurk/signin/internal/credentials"
	"github.com/muurk/signin/internal/logging"
	"github.com/muurk/signin/internal/signin"
	"github.com/muurk/signin/internal/tui"
	"github.com/muurk/signin/internal/version"
)

// Command flags
var (
	configPath   string
	logLevel     string
	logFile      string
	authMode     string
	authEndpoint string
	authTimeout  int
	accountsPath string
	noBlink      bool
	stay         bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir)/signin/config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: next to the config file)")
	rootCmd.PersistentFlags().StringVar(&accountsPath, "accounts", "", "Accounts file for local mode")

	rootCmd.Flags().StringVar(&authMode, "mode", "", "Credential backend: local or http")
	rootCmd.Flags().StringVar(&authEndpoint, "endpoint", "", "Authentication endpoint for http mode")
	rootCmd.Flags().IntVar(&authTimeout, "timeout", 0, "Submission timeout in seconds")
	rootCmd.Flags().BoolVar(&noBlink, "no-blink", false, "Do not blink the cursor")
	rootCmd.Flags().BoolVar(&stay, "stay", false, "Keep the screen open after a successful sign-in")

	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(addAccountCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if flags.Changed("accounts") {
		cfg.Auth.AccountsFile = accountsPath
	}
	if flags.Changed("mode") {
		cfg.Auth.Mode = authMode
	}
	if flags.Changed("endpoint") {
		cfg.Auth.Endpoint = authEndpoint
	}
	if flags.Changed("timeout") {
		cfg.Auth.TimeoutSeconds = authTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// newSubmitter builds the credential collaborator selected by cfg, bounded
// by the configured timeout.
func newSubmitter(cfg *config.Config) (signin.Submitter, error) {
	var s credentials.Submitter

	switch cfg.Auth.Mode {
	case config.AuthModeHTTP:
		h := credentials.NewHTTPSubmitter(cfg.Auth.Endpoint)
		h.SetTimeout(cfg.Timeout())
		h.UserAgent = "signin/" + version.Version
		s = h

	case config.AuthModeLocal:
		path, err := cfg.AccountsPath()
		if err != nil {
			return nil, err
		}
		s = credentials.NewLocalSubmitter(path)

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}

	return credentials.WithTimeout(s, cfg.Timeout()), nil
}

func runSignIn(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs always go to a file.
	path := cfg.Logging.File
	if path == "" {
		if path, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	if cfg.Logging.Level != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := logging.Initialize(cfg.Logging.Level, path); err != nil {
		return err
	}
	defer logging.Sync()

	submitter, err := newSubmitter(cfg)
	if err != nil {
		return err
	}

	logging.Info("Starting sign-in screen",
		zap.String("version", version.Full()),
		zap.String("auth_mode", cfg.Auth.Mode),
	)

	opts := []tui.Option{tui.WithPalette(cfg.FieldPalette())}
	if noBlink {
		opts = append(opts, tui.WithStaticCursor())
	}
	if stay {
		opts = append(opts, tui.WithStay())
	}

	final, err := tea.NewProgram(tui.NewAppModel(submitter, opts...), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("sign-in screen error: %w", err)
	}

	if app, ok := final.(tui.AppModel); ok && app.SignedIn != "" {
		fmt.Printf("Signed in as %s\n", app.SignedIn)
	}
	return nil
}

// hashPasswordCmd prints a bcrypt hash for an accounts file entry
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print the bcrypt hash of a password",
	Long: `Read a password and print its bcrypt hash, suitable for the hash field of
an accounts file entry. The password is read without echo when stdin is a
terminal, otherwise from the first line of stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}
		hash, err := credentials.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

// addAccountCmd adds or replaces an account in the local accounts file
var addAccountCmd = &cobra.Command{
	Use:   "add-account <email>",
	Short: "Add an account to the local accounts file",
	Example: `  # Prompt for the password
  signin add-account you@example.com

  # Scripted
  echo 's3cret' | signin add-account you@example.com --accounts ./accounts.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path, err := cfg.AccountsPath()
		if err != nil {
			return err
		}

		password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}

		if err := credentials.NewLocalSubmitter(path).AddAccount(strings.TrimSpace(args[0]), strings.TrimSpace(password)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Account %s saved to %s\n", args[0], path)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// readPassword reads a password without echo from a terminal, or the first
// line of in otherwise.
func readPassword(in io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password given")
	}
	return line, nil
}
