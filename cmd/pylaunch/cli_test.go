// Where: cmd/pylaunch/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() { getwd = origGetwd })

	getwd = func() (string, error) {
		return "/project", nil
	}

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.ProjectDir != "/project" {
		t.Fatalf("unexpected project dir: %s", deps.ProjectDir)
	}
	if deps.Runner == nil {
		t.Fatal("expected a command runner")
	}
	if deps.Confirm == nil {
		t.Fatal("expected a confirm function")
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() { getwd = origGetwd })

	getwd = func() (string, error) {
		return "", errors.New("boom")
	}

	if _, err := buildDependencies(); err == nil {
		t.Fatal("expected error on getwd failure")
	}
}
