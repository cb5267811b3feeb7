package repo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odvcencio/mingit/pkg/object"
)

func TestWalkCommitsLinearChain(t *testing.T) {
	r := testRepo(t)
	tree := writeTree(t, r)

	c1 := writeCommit(t, r, tree, "one\n")
	c2 := writeCommit(t, r, tree, "two\n", c1)
	c3 := writeCommit(t, r, tree, "three\n", c2)

	var visited []object.Hash
	err := r.WalkCommits(c3, func(h object.Hash, _ *object.Commit) error {
		visited = append(visited, h)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkCommits: %v", err)
	}
	if diff := cmp.Diff([]object.Hash{c3, c2, c1}, visited); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}

func TestWalkCommitsMergeVisitsOnce(t *testing.T) {
	r := testRepo(t)
	tree := writeTree(t, r)

	base := writeCommit(t, r, tree, "base\n")
	left := writeCommit(t, r, tree, "left\n", base)
	right := writeCommit(t, r, tree, "right\n", base)
	merge := writeCommit(t, r, tree, "merge\n", left, right)

	counts := make(map[object.Hash]int)
	err := r.WalkCommits(merge, func(h object.Hash, _ *object.Commit) error {
		counts[h]++
		return nil
	})
	if err != nil {
		t.Fatalf("WalkCommits: %v", err)
	}
	if len(counts) != 4 {
		t.Errorf("visited %d commits, want 4", len(counts))
	}
	for h, n := range counts {
		if n != 1 {
			t.Errorf("commit %s visited %d times", h.Short(), n)
		}
	}
}

func TestWalkCommitsMissingParent(t *testing.T) {
	r := testRepo(t)
	tree := writeTree(t, r)

	// Parent hash is syntactically valid but absent from the store.
	ghost := object.Hash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	tip := writeCommit(t, r, tree, "orphan tip\n", ghost)

	err := r.WalkCommits(tip, func(object.Hash, *object.Commit) error { return nil })
	if err == nil {
		t.Error("walk over a missing parent should fail")
	}
}
