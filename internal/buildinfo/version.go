// Package buildinfo normalizes the version stamped into the binary at link
// time.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Release bool   `json:"release"`
}

// New builds an Info from ldflags values. Version strings that parse as
// semver (with or without a leading "v") are canonicalized; anything else,
// such as "dev", is kept as given and marked as not a release.
func New(version, commit, date string) Info {
	info := Info{Version: version, Commit: commit, Date: date}
	if v, err := parseSemver(version); err == nil {
		info.Version = v.String()
		info.Release = v.Prerelease() == ""
	}
	return info
}

func (i Info) String() string {
	return fmt.Sprintf("version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
