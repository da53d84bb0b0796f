// Signin is a terminal sign-in screen.
//
// It shows an email and a password field, submits the credentials to the
// configured backend (a local bcrypt accounts file or an HTTP endpoint) and
// links to a sign-up screen.
//
// Usage:
//
//	signin [command] [flags]
//
// Running without a command opens the sign-in screen.
// See 'signin --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/signin/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "signin",
	Short: "Terminal sign-in screen",
	Long: `A terminal sign-in screen.

Enter your email and password and press enter to sign in. Credentials are
checked against the local accounts file or posted to an HTTP endpoint,
depending on the configuration.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSignIn,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("signin %s\n", version.Full())
	},
}
