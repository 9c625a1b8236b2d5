//go:build !windows

package bootstrap

import (
	"context"
	"os"
	"syscall"
)

// sysExec is swappable for tests.
var sysExec = syscall.Exec

// launchProcess replaces the wrapper's process image with the entry point.
// No residual wrapper process remains and the exit code is inherently the
// child's own. It only returns when exec itself fails.
func launchProcess(_ context.Context, dir string, argv []string) (int, error) {
	if err := os.Chdir(dir); err != nil {
		return 0, err
	}
	if err := sysExec(argv[0], argv, os.Environ()); err != nil {
		return 0, err
	}
	return 0, nil
}
