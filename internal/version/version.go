// Package version exposes version and build metadata for neurodemon
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags. A plain `go build` leaves them at their
// defaults and Resolve falls back to module build info.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// DisclaimerVersion is the revision of the legal disclaimer this binary
// ships. The config file can require a newer one, never an older one.
const DisclaimerVersion = "1.0"

// Info holds the resolved version information for this binary.
type Info struct {
	Version    string `json:"version"`
	Commit     string `json:"commit,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
	Disclaimer string `json:"disclaimer_version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Resolve returns the version info for the running binary. Binaries built
// without ldflags report the module version, or the VCS revision for builds
// straight from a checkout.
func Resolve() Info {
	return Info{
		Version:    Short(),
		Commit:     commit(),
		BuildDate:  BuildDate,
		Disclaimer: DisclaimerVersion,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns just the version string.
func Short() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			revision := setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
			return "dev-" + revision
		}
	}
	return Version
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return setting.Value
		}
	}
	return Commit
}
