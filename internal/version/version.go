// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/tahanili/pylaunch/internal/meta"
)

// GetVersion returns the app name and version derived from build info.
// The version is the module version when released, otherwise the VCS
// revision (shortened, with a dirty marker when the tree was modified),
// falling back to "dev" when no build info is present.
func GetVersion() string {
	return fmt.Sprintf("%s %s", meta.AppName, buildVersion())
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
