//go:build !windows

package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestLaunchForwardsArgsVerbatim(t *testing.T) {
	b, dir, _ := newTestBootstrap(t, &stubRunner{})

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	restore := sysExec
	t.Cleanup(func() { sysExec = restore })

	var gotPath string
	var gotArgv []string
	sysExec = func(path string, argv []string, env []string) error {
		gotPath = path
		gotArgv = argv
		return nil
	}

	args := []string{"--mode", "code", "--debug", "positional arg"}
	if _, err := b.Launch(context.Background(), args); err != nil {
		t.Fatalf("launch: %v", err)
	}

	if gotPath != b.VenvInterpreter() {
		t.Fatalf("launched %q, want venv interpreter %q", gotPath, b.VenvInterpreter())
	}
	want := append([]string{b.VenvInterpreter(), filepath.Join(dir, "main.py")}, args...)
	if len(gotArgv) != len(want) {
		t.Fatalf("argv mismatch: got %v want %v", gotArgv, want)
	}
	for i := range want {
		if gotArgv[i] != want[i] {
			t.Fatalf("argv[%d] mismatch: got %q want %q", i, gotArgv[i], want[i])
		}
	}
}

func TestLaunchPropagatesExecFailure(t *testing.T) {
	b, _, _ := newTestBootstrap(t, &stubRunner{})

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	restore := sysExec
	t.Cleanup(func() { sysExec = restore })
	sysExec = func(string, []string, []string) error {
		return errors.New("exec format error")
	}

	if _, err := b.Launch(context.Background(), nil); err == nil {
		t.Fatal("expected exec failure to propagate")
	}
}

func TestExitCodeFromError(t *testing.T) {
	err := exec.Command("/bin/sh", "-c", "exit 3").Run()
	code, ok := ExitCode(err)
	if !ok {
		t.Fatalf("expected an exit status, got %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code mismatch: got %d want 3", code)
	}

	if _, ok := ExitCode(errors.New("spawn failed")); ok {
		t.Fatal("plain errors carry no exit status")
	}
}
