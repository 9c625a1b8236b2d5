// Where: internal/bootstrap/launch.go
// What: Hand-off to the external entry point.
// Why: The wrapper's exit code must equal the entry point's exit code.
package bootstrap

import (
	"context"
	"errors"
	"os/exec"
)

// Launch invokes the venv interpreter on the entry point, forwarding args
// verbatim. On Unix the process image is replaced, so a successful Launch
// never returns. On Windows the child is spawned and its exit code is
// returned. The returned int is meaningful only when err is nil.
func (b *Bootstrap) Launch(ctx context.Context, args []string) (int, error) {
	argv := append([]string{b.VenvInterpreter(), b.EntryPoint()}, args...)
	return launchProcess(ctx, b.dir, argv)
}

// ExitCode extracts a child process exit code from an error chain.
// ok is false when the error carries no exit status (e.g. spawn failure).
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
