package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

func ModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return fromBuildInfo(info)
}

// fromBuildInfo prefers the module version, as set by go install
// .../stuffer-go/cmd/stuffer@vX.Y.Z, and falls back to the vcs settings
// that go build records in a git checkout.
func fromBuildInfo(info *debug.BuildInfo) string {
	version := info.Main.Version
	if version != "(devel)" && version != "" {
		return version
	}
	settings := make(map[string]string)
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	revision, ok := settings["vcs.revision"]
	if !ok {
		return "(devel)"
	}
	version = "git " + revision
	if t, ok := settings["vcs.time"]; ok {
		version += " " + t
	}
	// Any untracked file not in .gitignore counts as a modification.
	if settings["vcs.modified"] != "false" {
		version += " (with local changes)"
	}
	return version
}

func DisplayVersion(w io.Writer, tool string) {
	fmt.Fprintf(w, "%s (stuffer-go module) %s\n", tool, ModuleVersion())
}
