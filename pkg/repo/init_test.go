package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitScaffolding(t *testing.T) {
	dir := t.TempDir()
	r, err := Init(dir, "")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, sub := range []string{
		"objects",
		filepath.Join("objects", "info"),
		filepath.Join("objects", "pack"),
		filepath.Join("refs", "heads"),
		filepath.Join("refs", "tags"),
	} {
		info, err := os.Stat(filepath.Join(r.GitDir, sub))
		if err != nil || !info.IsDir() {
			t.Errorf("missing directory %s: %v", sub, err)
		}
	}

	head, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/master\n" {
		t.Errorf("HEAD: got %q", head)
	}
}

func TestInitCustomBranch(t *testing.T) {
	r, err := Init(t.TempDir(), "main")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	head, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/main\n" {
		t.Errorf("HEAD: got %q", head)
	}
}

func TestInitRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir, ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := Init(dir, ""); err == nil {
		t.Error("second Init should fail")
	}
}

func TestOpenFindsRepoFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir, ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	r, err := Open(sub)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.RootDir != dir {
		t.Errorf("RootDir: got %s, want %s", r.RootDir, dir)
	}
}

func TestOpenOutsideRepoFails(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Open outside a repository should fail")
	}
}
