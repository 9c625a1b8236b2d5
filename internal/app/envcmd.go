// Where: internal/app/envcmd.go
// What: The env list and env set command handlers.
// Why: Let users inspect and edit the local secrets file safely.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/tahanili/pylaunch/internal/envfile"
	"github.com/tahanili/pylaunch/internal/fileops"
	"github.com/tahanili/pylaunch/internal/ui"
)

// runEnvList prints the entries of the local secrets file with masked
// values. The template is never consulted here; list shows what the entry
// point will actually see.
func runEnvList(deps Dependencies, out io.Writer) int {
	_, cfg, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	console := ui.New(out)

	local := filepath.Join(deps.ProjectDir, cfg.EnvFile)
	if !fileops.FileExists(local) {
		console.Warn(fmt.Sprintf("%s does not exist yet (run 'pylaunch setup')", cfg.EnvFile))
		return 0
	}

	values, err := envfile.Read(local)
	if err != nil {
		return exitWithError(out, err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	console.Header("🔑", cfg.EnvFile+":")
	for _, key := range keys {
		console.Item(key, envfile.Mask(values[key]))
	}
	return 0
}

// runEnvSet writes one entry into the local secrets file, prompting for
// the value when it was omitted on the command line.
func runEnvSet(cmd EnvSetCmd, deps Dependencies, out io.Writer) int {
	_, cfg, err := newBootstrap(deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	value := cmd.Value
	if value == "" {
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("no value given and no prompt available"))
		}
		value, err = deps.Prompter.Input(fmt.Sprintf("Value for %s", cmd.Key), "secret")
		if err != nil {
			return exitWithError(out, err)
		}
	}

	local := filepath.Join(deps.ProjectDir, cfg.EnvFile)
	if err := envfile.Set(local, cmd.Key, value); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("Set %s in %s", cmd.Key, cfg.EnvFile))
	return 0
}
