package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

const gitVersionPrefix = "git version "

// GitLocation describes a discovered git executable.
type GitLocation struct {
	Path      string `json:"path"`
	Version   string `json:"version"`
	IsWsl     bool   `json:"isWsl"`
	WslDistro string `json:"wslDistro,omitempty"`
}

// ParseGitVersion strips the "git version " prefix printed by `git --version`.
func ParseGitVersion(raw string) string {
	return strings.TrimPrefix(raw, gitVersionPrefix)
}

// AtLeast reports whether the located git is at least the given version.
// Vendor suffixes such as "2.39.0.windows.1" or "2.37.1 (Apple Git-137.1)" are
// ignored; an unparseable version never satisfies the minimum.
func (l GitLocation) AtLeast(minimum string) bool {
	current := canonicalVersion(l.Version)
	wanted := canonicalVersion(minimum)
	if current == "" || wanted == "" {
		return false
	}
	return semver.Compare(current, wanted) >= 0
}

// canonicalVersion turns "2.39.0.windows.1" into "v2.39.0".
func canonicalVersion(raw string) string {
	raw = strings.TrimSpace(raw)
	if fields := strings.Fields(raw); len(fields) > 0 {
		raw = fields[0]
	}
	parts := strings.Split(strings.TrimPrefix(raw, "v"), ".")
	if len(parts) > 3 { //nolint:mnd // major.minor.patch
		parts = parts[:3]
	}
	version := "v" + strings.Join(parts, ".")
	if !semver.IsValid(version) {
		return ""
	}
	return semver.Canonical(version)
}

// Command returns the executable and arguments that run git with args at
// this location, routing through the WSL launcher when needed.
func (l GitLocation) Command(args ...string) (string, []string) {
	if l.IsWsl {
		return l.Path, append([]string{"-d", l.WslDistro, "git"}, args...)
	}
	return l.Path, args
}
