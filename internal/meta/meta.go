// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep default path names and identity in one place.
package meta

const (
	// Project Identity
	AppName   = "pylaunch"
	EnvPrefix = "PYLAUNCH"

	// Directory Layout (relative to the project directory)
	VenvDir         = ".venv"
	ManifestFile    = "requirements.txt"
	EnvFile         = ".env"
	EnvTemplateFile = ".env.example"
	EntryPointFile  = "main.py"
	ProjectConfig   = "pylaunch.yaml"

	// Interpreter command names, tried in order.
	PythonPrimary  = "python3"
	PythonFallback = "python"
)
