// Where: internal/config/project.go
// What: Optional per-project configuration.
// Why: Let a project override the default bootstrap paths without flags.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tahanili/pylaunch/internal/meta"
)

// Project represents the optional pylaunch.yaml in the project directory.
// Every field is optional; zero values fall back to the defaults below.
type Project struct {
	EntryPoint  string `yaml:"entry_point,omitempty"`
	VenvDir     string `yaml:"venv_dir,omitempty"`
	Manifest    string `yaml:"manifest,omitempty"`
	EnvFile     string `yaml:"env_file,omitempty"`
	EnvTemplate string `yaml:"env_template,omitempty"`
}

// DefaultProject returns the conventional layout: .venv, requirements.txt,
// .env/.env.example and a main.py entry point.
func DefaultProject() Project {
	return Project{
		EntryPoint:  meta.EntryPointFile,
		VenvDir:     meta.VenvDir,
		Manifest:    meta.ManifestFile,
		EnvFile:     meta.EnvFile,
		EnvTemplate: meta.EnvTemplateFile,
	}
}

// LoadProject reads pylaunch.yaml from dir, applying defaults for any
// field left unset. A missing file yields the defaults without error.
func LoadProject(dir string) (Project, error) {
	cfg := DefaultProject()

	payload, err := os.ReadFile(filepath.Join(dir, meta.ProjectConfig))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Project{}, err
	}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Project{}, err
	}
	return applyDefaults(cfg), nil
}

func applyDefaults(cfg Project) Project {
	defaults := DefaultProject()
	if cfg.EntryPoint == "" {
		cfg.EntryPoint = defaults.EntryPoint
	}
	if cfg.VenvDir == "" {
		cfg.VenvDir = defaults.VenvDir
	}
	if cfg.Manifest == "" {
		cfg.Manifest = defaults.Manifest
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = defaults.EnvFile
	}
	if cfg.EnvTemplate == "" {
		cfg.EnvTemplate = defaults.EnvTemplate
	}
	return cfg
}
