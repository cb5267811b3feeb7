package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/odvcencio/mingit/pkg/object"
)

// ErrDestinationNotEmpty means the checkout destination already has entries.
var ErrDestinationNotEmpty = errors.New("checkout destination is not empty")

// CheckoutTree materializes the tree h into dest, which must exist and be
// empty. Entries are written in stored order: subtrees become directories,
// blobs become files (0755 when the entry mode is 100755, 0644 otherwise).
// Symlink entries (mode 120000) are written as regular files holding the
// link target text.
//
// Checkout is not transactional: a failure while reading a child aborts the
// walk but files written for earlier siblings stay on disk. Callers needing
// atomicity check out into a scratch directory and rename it into place.
func (r *Repo) CheckoutTree(h object.Hash, dest string) error {
	entries, err := os.ReadDir(dest)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("checkout into %s: %w", dest, ErrDestinationNotEmpty)
	}

	tree, err := r.Store.ReadTree(h)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	return r.checkoutTree(tree, dest)
}

// CheckoutCommit materializes the tree snapshotted by the commit h.
func (r *Repo) CheckoutCommit(h object.Hash, dest string) error {
	commit, err := r.Store.ReadCommit(h)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	return r.CheckoutTree(commit.TreeHash(), dest)
}

func (r *Repo) checkoutTree(tree *object.Tree, dest string) error {
	for _, entry := range tree.Entries {
		path := filepath.Join(dest, entry.Name)

		obj, err := r.Store.Read(entry.Target)
		if err != nil {
			return fmt.Errorf("checkout %q: %w", entry.Name, err)
		}

		switch child := obj.(type) {
		case *object.Tree:
			if err := os.Mkdir(path, 0o755); err != nil {
				return fmt.Errorf("checkout: mkdir %q: %w", path, err)
			}
			if err := r.checkoutTree(child, path); err != nil {
				return err
			}
		case *object.Blob:
			if err := os.WriteFile(path, child.Data, filePermFromMode(entry.Mode)); err != nil {
				return fmt.Errorf("checkout: write %q: %w", path, err)
			}
		default:
			return fmt.Errorf("checkout %q: unexpected %s object inside tree", entry.Name, obj.Type())
		}
	}
	return nil
}

func filePermFromMode(mode string) os.FileMode {
	if mode == object.ModeExecutable {
		return 0o755
	}
	return 0o644
}
