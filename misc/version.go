// Package misc keeps program identity helpers used across commands.
package misc

import (
	"runtime/debug"
	"strings"
)

const appName = "cssb"

// set by the linker during release builds
var (
	version = ""
	gitHash = ""
)

// GetAppName returns program name to be used in logs, temporary file names
// and the like.
func GetAppName() string {
	return appName
}

// GetVersion returns program version - either injected at link time or
// taken from the module build information.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns short VCS revision the program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return strings.Repeat("0", 12)
}
