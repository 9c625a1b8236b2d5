// Where: internal/app/run.go
// What: The run and setup command handlers.
// Why: Bootstrap then hand off, propagating the entry point's exit code.
package app

import (
	"context"
	"io"

	"github.com/tahanili/pylaunch/internal/bootstrap"
	"github.com/tahanili/pylaunch/internal/ui"
)

// runLaunch performs the full bootstrap sequence and hands off to the
// entry point, forwarding args verbatim. The returned exit code equals
// the entry point's own exit code; a failing bootstrap step exits with
// that step's exit code before the entry point is ever invoked.
func runLaunch(args []string, deps Dependencies, out io.Writer) int {
	b, _, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()
	if err := b.Prepare(ctx); err != nil {
		return exitWithStepError(out, err)
	}

	code, err := deps.Launcher(ctx, b, args)
	if err != nil {
		return exitWithError(out, err)
	}
	return code
}

// runSetup runs the bootstrap sequence without launching.
func runSetup(deps Dependencies, out io.Writer) int {
	b, cfg, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := b.Prepare(context.Background()); err != nil {
		return exitWithStepError(out, err)
	}

	console := ui.New(out)
	console.Success("Environment ready")
	console.Item("Interpreter", b.VenvInterpreter())
	console.Item("Entry point", cfg.EntryPoint)
	return 0
}

// exitWithStepError reports a failed bootstrap step, reusing the failing
// command's own exit code when it carried one.
func exitWithStepError(out io.Writer, err error) int {
	code := exitWithError(out, err)
	if stepCode, ok := bootstrap.ExitCode(err); ok && stepCode != 0 {
		return stepCode
	}
	return code
}
