// Package version exposes build metadata set via -ldflags.
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a one-line summary suitable for a --version flag.
func String() string {
	return fmt.Sprintf("darkplot %s (%s, built %s)", Version, GitSHA, BuildTime)
}
