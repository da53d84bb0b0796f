package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "dirty checkout",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"},
				},
			},
			wantVersion: "dev-20260304",
			wantCommit:  "0123456-dirty",
		},
		{
			name: "module version",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			wantVersion: "v1.4.0",
			wantCommit:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldV, oldC := Version, Commit
			defer func() { Version, Commit = oldV, oldC }()
			Version, Commit = "", ""

			fillFromBuildInfo(func() (*debug.BuildInfo, bool) { return tt.info, true })

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFull(t *testing.T) {
	if got := Full(); !strings.Contains(got, Version) || !strings.Contains(got, Commit) {
		t.Errorf("Full() = %q", got)
	}
}
