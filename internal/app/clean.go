// Where: internal/app/clean.go
// What: The clean command handler.
// Why: Make the one destructive operation explicit and confirmed.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/tahanili/pylaunch/internal/fileops"
	"github.com/tahanili/pylaunch/internal/ui"
)

func runClean(cmd CleanCmd, deps Dependencies, out io.Writer) int {
	b, cfg, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	console := ui.New(out)

	if !fileops.DirExists(b.VenvDir()) {
		console.Info(fmt.Sprintf("No %s to remove", cfg.VenvDir))
		return 0
	}

	if !cmd.Yes {
		ok, err := deps.Confirm(fmt.Sprintf("Remove %s?", cfg.VenvDir))
		if err != nil {
			return exitWithError(out, err)
		}
		if !ok {
			console.Info("Aborted")
			return 0
		}
	}

	if err := os.RemoveAll(b.VenvDir()); err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Removed %s", cfg.VenvDir))
	return 0
}
