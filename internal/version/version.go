// Package version holds build metadata for colorthief, injected with
// -ldflags "-X github.com/UserUnknownFactor/colorthief/internal/version.Version=x.y.z"
// (likewise Commit and Date).
package version

import (
	"fmt"
	"runtime"
)

const name = "colorthief"

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	if i.Commit != "unknown" && i.Date != "unknown" {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			name, i.Version, shortCommit(i.Commit), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("%s version %s (%s, %s)", name, i.Version, i.GoVersion, i.Platform)
}

// String returns the human-readable version string of this build.
func String() string {
	return GetInfo().String()
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

// UserAgent returns the User-Agent sent with HTTP requests.
func UserAgent() string {
	return name + "/" + Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
