// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher with exit-code semantics.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tahanili/pylaunch/internal/bootstrap"
	"github.com/tahanili/pylaunch/internal/config"
	"github.com/tahanili/pylaunch/internal/interaction"
	"github.com/tahanili/pylaunch/internal/python"
	"github.com/tahanili/pylaunch/internal/ui"
	"github.com/tahanili/pylaunch/internal/version"
)

// Launcher hands off control to the entry point. It is injected so tests
// can observe the hand-off without replacing the test process image.
type Launcher func(ctx context.Context, b *bootstrap.Bootstrap, args []string) (int, error)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables swapping implementations in tests.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Runner     python.CommandRunner
	Prompter   interaction.Prompter
	Launcher   Launcher
	Confirm    func(message string) (bool, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// The bare invocation (no recognized subcommand) never reaches Kong:
// it is forwarded verbatim to the entry point.
type CLI struct {
	Run     RunCmd     `cmd:"" passthrough:"" help:"Bootstrap the environment and launch the entry point"`
	Setup   SetupCmd   `cmd:"" help:"Bootstrap the environment without launching"`
	Doctor  DoctorCmd  `cmd:"" help:"Report environment status"`
	Env     EnvCmd     `cmd:"" name:"env" help:"Inspect and edit the local secrets file"`
	Clean   CleanCmd   `cmd:"" help:"Remove the virtual environment"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type RunCmd struct {
	Args []string `arg:"" optional:"" help:"Arguments forwarded to the entry point"`
}
type SetupCmd struct{}
type DoctorCmd struct{}
type EnvCmd struct {
	List EnvListCmd `cmd:"" help:"List secrets file entries (values masked)"`
	Set  EnvSetCmd  `cmd:"" help:"Set an entry in the secrets file"`
}
type EnvListCmd struct{}
type EnvSetCmd struct {
	Key   string `arg:"" help:"Entry name"`
	Value string `arg:"" optional:"" help:"Entry value (prompted when omitted)"`
}
type CleanCmd struct {
	Yes bool `short:"y" help:"Skip confirmation prompt"`
}
type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It returns the
// process exit code; os.Exit happens only in main.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Runner == nil {
		deps.Runner = python.ExecRunner{}
	}
	if deps.Launcher == nil {
		deps.Launcher = func(ctx context.Context, b *bootstrap.Bootstrap, fwd []string) (int, error) {
			return b.Launch(ctx, fwd)
		}
	}
	if deps.Confirm == nil {
		deps.Confirm = interaction.PromptYesNo
	}

	// The wrapper takes no flags of its own: anything that is not a known
	// subcommand is forwarded unmodified to the entry point.
	if len(args) == 0 || !isSubcommand(args[0]) {
		return runLaunch(args, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name("pylaunch"), kong.Writers(out, out))
	if err != nil {
		return exitWithError(out, err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	switch ctx.Command() {
	case "run", "run <args>":
		return runLaunch(cli.Run.Args, deps, out)
	case "setup":
		return runSetup(deps, out)
	case "doctor":
		return runDoctor(deps, out)
	case "env list":
		return runEnvList(deps, out)
	case "env set <key>", "env set <key> <value>":
		return runEnvSet(cli.Env.Set, deps, out)
	case "clean":
		return runClean(cli.Clean, deps, out)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func isSubcommand(arg string) bool {
	switch arg {
	case "run", "setup", "doctor", "env", "clean", "version":
		return true
	}
	return false
}

// newBootstrap loads the project config and wires up a Bootstrap.
func newBootstrap(deps Dependencies, out io.Writer) (*bootstrap.Bootstrap, config.Project, error) {
	cfg, err := config.LoadProject(deps.ProjectDir)
	if err != nil {
		return nil, config.Project{}, err
	}
	return bootstrap.New(deps.ProjectDir, cfg, deps.Runner, ui.New(out)), cfg, nil
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
