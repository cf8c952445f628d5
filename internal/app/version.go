package app

import "fmt"

// Build metadata, overridden via -ldflags "-X ...internal/app.Version=v1.2.3"
// (same for Commit and BuildTime).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
