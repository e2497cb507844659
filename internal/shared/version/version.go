// Package version carries build metadata injected at link time via
// -ldflags "-X accountsforge/internal/shared/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
