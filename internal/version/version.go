package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release of lync-update-info. Overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time.
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns the release string, falling back to the module version
// recorded by `go install` when ldflags were not set.
func Short() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}

// Full returns the release with commit, build time and toolchain.
func Full() string {
	return fmt.Sprintf("lync-update-info %s (commit: %s, built at: %s, %s %s/%s)",
		Short(), Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
