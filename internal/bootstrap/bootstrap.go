// Where: internal/bootstrap/bootstrap.go
// What: The bootstrap step sequence: venv, activation, dependencies, secrets.
// Why: Prepare a project's local execution environment before handing off.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tahanili/pylaunch/internal/config"
	"github.com/tahanili/pylaunch/internal/envfile"
	"github.com/tahanili/pylaunch/internal/fileops"
	"github.com/tahanili/pylaunch/internal/python"
	"github.com/tahanili/pylaunch/internal/ui"
)

// Bootstrap prepares a project directory for launching its entry point.
// Every step is idempotent and fails fast; nothing is retried and nothing
// is ever deleted.
type Bootstrap struct {
	dir     string
	cfg     config.Project
	runner  python.CommandRunner
	console *ui.Console
}

// New creates a Bootstrap for the given project directory.
func New(dir string, cfg config.Project, runner python.CommandRunner, console *ui.Console) *Bootstrap {
	return &Bootstrap{dir: dir, cfg: cfg, runner: runner, console: console}
}

// Step is one named, idempotent, fail-fast operation in the sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Steps returns the bootstrap sequence in its fixed order:
// environment, activation, dependencies, secrets.
func (b *Bootstrap) Steps() []Step {
	return []Step{
		{Name: "virtualenv", Run: b.EnsureEnvironment},
		{Name: "activate", Run: func(context.Context) error { return b.ActivateEnvironment() }},
		{Name: "dependencies", Run: b.InstallDependencies},
		{Name: "secrets", Run: func(context.Context) error { return b.EnsureSecrets() }},
	}
}

// Prepare runs the full sequence, stopping at the first failure.
func (b *Bootstrap) Prepare(ctx context.Context) error {
	for _, step := range b.Steps() {
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}

// VenvDir returns the absolute path of the virtual environment root.
func (b *Bootstrap) VenvDir() string {
	return filepath.Join(b.dir, b.cfg.VenvDir)
}

// VenvInterpreter returns the path of the venv's interpreter binary.
func (b *Bootstrap) VenvInterpreter() string {
	return python.VenvInterpreter(b.VenvDir())
}

// EntryPoint returns the absolute path of the external entry point.
func (b *Bootstrap) EntryPoint() string {
	return filepath.Join(b.dir, b.cfg.EntryPoint)
}

// EnsureEnvironment creates the virtual environment if its interpreter
// binary is absent. An existing environment is left untouched.
func (b *Bootstrap) EnsureEnvironment(ctx context.Context) error {
	if fileops.FileExists(b.VenvInterpreter()) {
		return nil
	}

	interpreter, err := python.FindInterpreter()
	if err != nil {
		return err
	}

	b.console.Info(fmt.Sprintf("Creating virtual environment in %s ...", b.cfg.VenvDir))
	if err := b.runner.Run(ctx, b.dir, interpreter, "-m", "venv", b.cfg.VenvDir); err != nil {
		return fmt.Errorf("create venv with %s: %w", interpreter, err)
	}
	if !fileops.FileExists(b.VenvInterpreter()) {
		return fmt.Errorf("venv created but interpreter missing at %s", b.VenvInterpreter())
	}
	return nil
}

// ActivateEnvironment mutates the current process environment the way the
// venv activate scripts do: VIRTUAL_ENV points at the environment, its
// scripts directory is prepended to PATH, and PYTHONHOME is cleared so the
// venv interpreter resolves its own stdlib.
func (b *Bootstrap) ActivateEnvironment() error {
	venv, err := filepath.Abs(b.VenvDir())
	if err != nil {
		return err
	}
	if err := os.Setenv("VIRTUAL_ENV", venv); err != nil {
		return err
	}
	path := python.VenvBinDir(venv) + string(os.PathListSeparator) + os.Getenv("PATH")
	if err := os.Setenv("PATH", path); err != nil {
		return err
	}
	return os.Unsetenv("PYTHONHOME")
}

// InstallDependencies upgrades pip unconditionally, then installs from the
// manifest if one exists. A missing manifest is a silent no-op.
func (b *Bootstrap) InstallDependencies(ctx context.Context) error {
	py := b.VenvInterpreter()
	if err := b.runner.Run(ctx, b.dir, py, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}

	manifest := filepath.Join(b.dir, b.cfg.Manifest)
	if !fileops.FileExists(manifest) {
		return nil
	}
	if err := b.runner.Run(ctx, b.dir, py, "-m", "pip", "install", "-r", b.cfg.Manifest); err != nil {
		return fmt.Errorf("install %s: %w", b.cfg.Manifest, err)
	}
	return nil
}

// EnsureSecrets copies the env template to the local secrets file when the
// latter is absent. An existing local file is never overwritten; a missing
// template is a warning, not an error.
func (b *Bootstrap) EnsureSecrets() error {
	template := filepath.Join(b.dir, b.cfg.EnvTemplate)
	local := filepath.Join(b.dir, b.cfg.EnvFile)

	status, err := envfile.Ensure(template, local)
	if err != nil {
		return err
	}
	switch status {
	case envfile.StatusCreated:
		b.console.Info(fmt.Sprintf("Created %s from %s, edit it to add your secrets", b.cfg.EnvFile, b.cfg.EnvTemplate))
	case envfile.StatusNoTemplate:
		b.console.Warn(fmt.Sprintf("No %s or %s found, continuing without secrets", b.cfg.EnvFile, b.cfg.EnvTemplate))
	}
	return nil
}
