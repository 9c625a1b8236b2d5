// Where: internal/python/python.go
// What: Python interpreter discovery and venv path layout.
// Why: Keep platform differences out of the bootstrap step logic.
package python

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/tahanili/pylaunch/internal/meta"
)

// LookPath is swappable for tests.
var LookPath = exec.LookPath

// FindInterpreter locates a system Python interpreter, trying the primary
// command name first and falling back to the secondary. Availability of the
// two names varies by platform and distribution.
func FindInterpreter() (string, error) {
	for _, name := range []string{meta.PythonPrimary, meta.PythonFallback} {
		if path, err := LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found (tried %q and %q)", meta.PythonPrimary, meta.PythonFallback)
}

// VenvBinDir returns the scripts directory inside a venv for the current
// platform: Scripts on Windows, bin elsewhere.
func VenvBinDir(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts")
	}
	return filepath.Join(venvDir, "bin")
}

// VenvInterpreter returns the path of the venv's own interpreter binary.
// Its presence is the marker that the venv has been materialized.
func VenvInterpreter(venvDir string) string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(VenvBinDir(venvDir), name)
}
