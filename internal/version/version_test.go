package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version, Commit, Date = "1.2.3", "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "colorthief version 1.2.3 (") {
		t.Errorf("String() = %q, want dev-build form", got)
	}

	Commit, Date = "0123456789abcdef", "2026-01-02T03:04:05Z"
	got := String()
	if !strings.Contains(got, "commit: 01234567,") || !strings.Contains(got, "built: 2026-01-02T03:04:05Z") {
		t.Errorf("String() = %q, want short commit and date", got)
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() with short commit = %q", got)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
	if got := UserAgent(); got != "colorthief/"+Version {
		t.Errorf("UserAgent() = %q", got)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
