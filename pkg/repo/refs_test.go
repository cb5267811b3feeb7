package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odvcencio/mingit/pkg/object"
)

func TestUpdateAndResolveRef(t *testing.T) {
	r := testRepo(t)
	h := writeBlob(t, r, "ref target")

	if err := r.UpdateRef("refs/heads/master", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	got, err := r.ResolveRef("refs/heads/master")
	if err != nil {
		t.Fatalf("ResolveRef: %v", err)
	}
	if got != h {
		t.Errorf("ResolveRef: got %s, want %s", got, h)
	}
}

func TestResolveRefFollowsHEAD(t *testing.T) {
	r := testRepo(t)
	h := writeBlob(t, r, "head target")
	if err := r.UpdateRef("refs/heads/master", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	// Fresh HEAD is symbolic: "ref: refs/heads/master".
	got, err := r.ResolveRef("HEAD")
	if err != nil {
		t.Fatalf("ResolveRef(HEAD): %v", err)
	}
	if got != h {
		t.Errorf("HEAD: got %s, want %s", got, h)
	}
}

func TestResolveRefDanglingHEAD(t *testing.T) {
	r := testRepo(t)
	// No commits yet: HEAD points at a branch file that does not exist.
	if _, err := r.ResolveRef("HEAD"); !errors.Is(err, object.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveRefChainedIndirection(t *testing.T) {
	r := testRepo(t)
	h := writeBlob(t, r, "chained")
	if err := r.UpdateRef("refs/heads/feature", h); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	link := filepath.Join(r.GitDir, "refs", "heads", "alias")
	if err := os.WriteFile(link, []byte("ref: refs/heads/feature\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := r.ResolveRef("refs/heads/alias")
	if err != nil {
		t.Fatalf("ResolveRef: %v", err)
	}
	if got != h {
		t.Errorf("alias: got %s, want %s", got, h)
	}
}

func TestHead(t *testing.T) {
	r := testRepo(t)
	target, err := r.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if target != "refs/heads/master" {
		t.Errorf("Head: got %q, want refs/heads/master", target)
	}
}

func TestListRefs(t *testing.T) {
	r := testRepo(t)
	h1 := writeBlob(t, r, "one")
	h2 := writeBlob(t, r, "two")
	if err := r.UpdateRef("refs/heads/master", h1); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	if err := r.UpdateRef("refs/tags/v1", h2); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	refs, err := r.ListRefs("")
	if err != nil {
		t.Fatalf("ListRefs: %v", err)
	}
	want := []Ref{
		{Name: "refs/heads/master", Hash: h1},
		{Name: "refs/tags/v1", Hash: h2},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("refs (-want +got):\n%s", diff)
	}

	tagsOnly, err := r.ListRefs("tags")
	if err != nil {
		t.Fatalf("ListRefs(tags): %v", err)
	}
	if len(tagsOnly) != 1 || tagsOnly[0].Name != "refs/tags/v1" {
		t.Errorf("tags: got %+v", tagsOnly)
	}
}

func TestResolveName(t *testing.T) {
	r := testRepo(t)
	blobHash := writeBlob(t, r, "resolvable")
	tree := writeTree(t, r, object.TreeEntry{Mode: object.ModeFile, Name: "f", Target: blobHash})
	commit := writeCommit(t, r, tree, "tip\n")

	if err := r.UpdateRef("refs/heads/master", commit); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	if err := r.CreateTag("v1", commit, false); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	for _, name := range []string{
		"HEAD",
		"master",
		"v1",
		string(commit),
		string(commit[:8]),
	} {
		got, err := r.ResolveName(name)
		if err != nil {
			t.Fatalf("ResolveName(%q): %v", name, err)
		}
		if got != commit {
			t.Errorf("ResolveName(%q): got %s, want %s", name, got, commit)
		}
	}

	if _, err := r.ResolveName("no-such-revision"); !errors.Is(err, object.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveNameAmbiguousAcrossNamespaces(t *testing.T) {
	r := testRepo(t)
	h1 := writeBlob(t, r, "branch target")
	h2 := writeBlob(t, r, "tag target")
	if err := r.UpdateRef("refs/heads/v1", h1); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}
	if err := r.UpdateRef("refs/tags/v1", h2); err != nil {
		t.Fatalf("UpdateRef: %v", err)
	}

	_, err := r.ResolveName("v1")
	if !errors.Is(err, object.ErrAmbiguousID) {
		t.Errorf("expected ErrAmbiguousID, got %v", err)
	}
}
