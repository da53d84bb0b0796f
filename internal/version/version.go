// Package version reports the build version of the sign-in tool.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/signin/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/signin/internal/version.Commit=abc123"
//
// Builds without ldflags fall back to VCS build info, then to "dev".
var (
	Version = ""
	Commit  = ""
)

func init() {
	fillFromBuildInfo(debug.ReadBuildInfo)

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo derives missing values from VCS stamps.
func fillFromBuildInfo(read func() (*debug.BuildInfo, bool)) {
	if Version != "" && Commit != "" {
		return
	}
	info, ok := read()
	if !ok {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if settings["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if vcsTime := settings["vcs.time"]; Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
