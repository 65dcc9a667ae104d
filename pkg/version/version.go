// Package version exposes the build version of the pokedex binary.
//
// The values are overridden at link time:
//
//	go build -ldflags "-X github.com/rshade/pokedex/pkg/version.version=1.2.3"
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the raw version string embedded at build time.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Semver parses the embedded version as a semantic version.
// A leading "v" is accepted.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", version, err)
	}
	return v, nil
}

// UserAgent returns the User-Agent header value sent to the Pokémon API.
func UserAgent() string {
	return "pokedex/" + version
}

// Info returns a multi-line human readable description of the build.
func Info() string {
	return fmt.Sprintf("pokedex %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s",
		version, gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
