package repo

import (
	"fmt"

	"github.com/odvcencio/mingit/pkg/object"
)

// WalkCommits visits start and every ancestor reachable through parent
// headers, depth first, calling fn once per commit. A seen-set keeps merge
// ancestry from being visited twice. fn returning an error stops the walk.
func (r *Repo) WalkCommits(start object.Hash, fn func(object.Hash, *object.Commit) error) error {
	seen := make(map[object.Hash]bool)
	return r.walkCommits(start, seen, fn)
}

func (r *Repo) walkCommits(h object.Hash, seen map[object.Hash]bool, fn func(object.Hash, *object.Commit) error) error {
	if seen[h] {
		return nil
	}
	seen[h] = true

	commit, err := r.Store.ReadCommit(h)
	if err != nil {
		return fmt.Errorf("walk commits: %w", err)
	}
	if err := fn(h, commit); err != nil {
		return err
	}
	for _, parent := range commit.Parents() {
		if err := r.walkCommits(parent, seen, fn); err != nil {
			return err
		}
	}
	return nil
}
