package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFilePreservesContentAndMode(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.txt")
	dst := filepath.Join(t.TempDir(), "nested", "dst.txt")
	if err := os.WriteFile(src, []byte("API_KEY=\nDEBUG=false\n"), 0o640); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(data) != "API_KEY=\nDEBUG=false\n" {
		t.Fatalf("content mismatch: %q", string(data))
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o640 {
		t.Fatalf("perm mismatch: got %o want %o", got, 0o640)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if !FileExists(path) {
		t.Fatal("expected file to exist")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Fatal("expected missing file to report false")
	}
	if FileExists(dir) {
		t.Fatal("directory must not count as a file")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !DirExists(dir) {
		t.Fatal("expected directory to exist")
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Fatal("expected missing directory to report false")
	}
}
