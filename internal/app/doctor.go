// Where: internal/app/doctor.go
// What: The doctor command handler.
// Why: Report environment status without mutating anything.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tahanili/pylaunch/internal/envfile"
	"github.com/tahanili/pylaunch/internal/fileops"
	"github.com/tahanili/pylaunch/internal/python"
	"github.com/tahanili/pylaunch/internal/ui"
)

// runDoctor prints the state of every filesystem artifact the bootstrap
// sequence cares about. It performs no writes. The exit code is non-zero
// only when no system interpreter can be found, since nothing else is
// unrecoverable.
func runDoctor(deps Dependencies, out io.Writer) int {
	b, cfg, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	console := ui.New(out)
	code := 0

	console.Header("🐍", "Interpreter:")
	if interpreter, err := python.FindInterpreter(); err != nil {
		console.ItemPlain(fmt.Sprintf("not found: %v", err))
		code = 1
	} else {
		console.Item("System", interpreter)
	}
	if fileops.FileExists(b.VenvInterpreter()) {
		console.Item("Virtualenv", b.VenvInterpreter())
	} else {
		console.Item("Virtualenv", "not created (run 'pylaunch setup')")
	}

	console.Header("📦", "Dependencies:")
	manifest := filepath.Join(deps.ProjectDir, cfg.Manifest)
	if fileops.FileExists(manifest) {
		console.Item("Manifest", cfg.Manifest)
	} else {
		console.Item("Manifest", "absent (install will be skipped)")
	}

	console.Header("🔑", "Secrets:")
	local := filepath.Join(deps.ProjectDir, cfg.EnvFile)
	template := filepath.Join(deps.ProjectDir, cfg.EnvTemplate)
	switch {
	case fileops.FileExists(local):
		console.Item(cfg.EnvFile, "present")
	case fileops.FileExists(template):
		console.Item(cfg.EnvFile, fmt.Sprintf("absent, will be created from %s", cfg.EnvTemplate))
	default:
		console.Item(cfg.EnvFile, "absent, no template to create it from")
	}
	missing, err := envfile.MissingKeys(template, local)
	if err != nil {
		return exitWithError(out, err)
	}
	for _, key := range missing {
		console.ItemPlain(fmt.Sprintf("missing key: %s", key))
	}

	console.Header("🚀", "Entry point:")
	if fileops.FileExists(b.EntryPoint()) {
		console.Item(cfg.EntryPoint, "present")
	} else {
		console.Item(cfg.EntryPoint, "absent")
	}

	return code
}
