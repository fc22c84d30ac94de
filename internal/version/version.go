package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the current released version.
// Override at build time:
//
//	go build -ldflags "-X github.com/seojun/jigit/internal/version.Version=1.2.0"
var Version = "0.0.0-dev"

// GitCommit is the git commit hash at build time.
// Set via ldflags: -X github.com/seojun/jigit/internal/version.GitCommit=$(git rev-parse HEAD)
var GitCommit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// String returns the full human-readable version line.
func String() string {
	return fmt.Sprintf("jigit %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

// IsVersionGreaterOrEqualThan reports whether version >= target in semver
// order.
func IsVersionGreaterOrEqualThan(version, target string) bool {
	return semver.Compare("v"+version, "v"+target) > -1
}
