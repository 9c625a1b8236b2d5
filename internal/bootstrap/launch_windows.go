//go:build windows

package bootstrap

import (
	"context"
	"os"
	"os/exec"
)

// launchProcess spawns the entry point with inherited stdio, waits for it,
// and captures the child's exit code explicitly.
func launchProcess(ctx context.Context, dir string, argv []string) (int, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if code, ok := ExitCode(err); ok {
			return code, nil
		}
		return 0, err
	}
	return 0, nil
}
