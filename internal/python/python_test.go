package python

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tahanili/pylaunch/internal/meta"
)

func TestFindInterpreterPrefersPrimary(t *testing.T) {
	restore := LookPath
	t.Cleanup(func() { LookPath = restore })

	LookPath = func(name string) (string, error) {
		if name == meta.PythonPrimary {
			return "/usr/bin/python3", nil
		}
		t.Fatalf("fallback should not be consulted when primary resolves, got lookup for %q", name)
		return "", nil
	}

	got, err := FindInterpreter()
	if err != nil {
		t.Fatalf("find interpreter: %v", err)
	}
	if got != "/usr/bin/python3" {
		t.Fatalf("unexpected interpreter: %s", got)
	}
}

func TestFindInterpreterFallsBack(t *testing.T) {
	restore := LookPath
	t.Cleanup(func() { LookPath = restore })

	LookPath = func(name string) (string, error) {
		if name == meta.PythonFallback {
			return "/usr/bin/python", nil
		}
		return "", errors.New("not found")
	}

	got, err := FindInterpreter()
	if err != nil {
		t.Fatalf("find interpreter: %v", err)
	}
	if got != "/usr/bin/python" {
		t.Fatalf("unexpected interpreter: %s", got)
	}
}

func TestFindInterpreterNeitherAvailable(t *testing.T) {
	restore := LookPath
	t.Cleanup(func() { LookPath = restore })

	LookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	_, err := FindInterpreter()
	if err == nil {
		t.Fatal("expected error when no interpreter is available")
	}
	if !strings.Contains(err.Error(), meta.PythonPrimary) || !strings.Contains(err.Error(), meta.PythonFallback) {
		t.Fatalf("error should name both candidates: %v", err)
	}
}

func TestVenvLayout(t *testing.T) {
	venv := filepath.Join("proj", ".venv")
	bin := VenvBinDir(venv)
	interp := VenvInterpreter(venv)

	if runtime.GOOS == "windows" {
		if filepath.Base(bin) != "Scripts" {
			t.Fatalf("unexpected bin dir: %s", bin)
		}
		if filepath.Base(interp) != "python.exe" {
			t.Fatalf("unexpected interpreter name: %s", interp)
		}
	} else {
		if filepath.Base(bin) != "bin" {
			t.Fatalf("unexpected bin dir: %s", bin)
		}
		if filepath.Base(interp) != "python" {
			t.Fatalf("unexpected interpreter name: %s", interp)
		}
	}
	if !strings.HasPrefix(interp, bin) {
		t.Fatalf("interpreter %s should live under %s", interp, bin)
	}
}
