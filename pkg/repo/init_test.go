package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func testRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

func TestInitLayout(t *testing.T) {
	r := testRepo(t)

	for _, rel := range []string{"objects", "refs/heads", "refs/tags", "branches"} {
		info, err := os.Stat(filepath.Join(r.GitDir, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", rel)
		}
	}

	head, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/master\n" {
		t.Errorf("HEAD: got %q", head)
	}

	if _, err := os.Stat(filepath.Join(r.GitDir, "description")); err != nil {
		t.Errorf("missing description: %v", err)
	}
}

func TestInitRefusesExistingRepo(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := Init(dir); err == nil {
		t.Error("second Init should fail on a non-empty .git")
	}
}

func TestInitCreatesWorktree(t *testing.T) {
	// The worktree directory does not exist yet; Init creates it.
	dir := filepath.Join(t.TempDir(), "nested", "worktree")
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("worktree not created: %v", err)
	}
}

func TestOpenWalksParents(t *testing.T) {
	r := testRepo(t)

	deep := filepath.Join(r.RootDir, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	opened, err := Open(deep)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rootWant, _ := filepath.Abs(r.RootDir)
	if opened.RootDir != rootWant {
		t.Errorf("RootDir: got %s, want %s", opened.RootDir, rootWant)
	}
}

func TestOpenOutsideRepository(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Open outside any repository should fail")
	}
}

func TestOpenRejectsUnknownFormatVersion(t *testing.T) {
	r := testRepo(t)
	cfg := DefaultConfig()
	cfg.Core.RepositoryFormatVersion = 1
	if err := r.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if _, err := Open(r.RootDir); err == nil {
		t.Error("Open should reject repositoryformatversion 1")
	}
}
