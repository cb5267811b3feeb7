package repo

import (
	"github.com/odvcencio/mingit/pkg/object"
)

// Repo is an opened repository: a worktree root, its .git directory and the
// object store inside it.
type Repo struct {
	RootDir string        // working directory root
	GitDir  string        // .git directory
	Store   *object.Store // content-addressed object store
}
