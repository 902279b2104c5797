// Package version provides version information for the tabby library.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknownValue = "unknown"

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = unknownValue
	GitCommit = unknownValue
	GoVersion = runtime.Version()
)

// BuildInfo contains detailed build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Module    string `json:"module"`
}

// Info assembles build information from the ldflags variables and the
// embedded module metadata.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		Module:    unknownValue,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" && info.GitCommit == unknownValue {
				info.GitCommit = setting.Value
			}
		}
	}

	return info
}

// String renders the build information as a multi-line report.
func (b BuildInfo) String() string {
	return fmt.Sprintf("tabby %s\n  commit:     %s\n  built:      %s\n  go version: %s\n",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion)
}
