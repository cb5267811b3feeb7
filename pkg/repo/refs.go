package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odvcencio/mingit/pkg/object"
)

const symrefPrefix = "ref: "

// Ref is a named pointer at an object.
type Ref struct {
	Name string // relative to .git, e.g. "refs/heads/master"
	Hash object.Hash
}

// Head returns the raw target of HEAD: either a ref name such as
// "refs/heads/master" or a detached hash.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(string(data)), symrefPrefix), nil
}

// ResolveRef reads the ref file .git/<name> and follows "ref: " indirection
// until it reaches a hash. A missing ref reports object.ErrNotFound (a fresh
// repository's HEAD points at a branch that does not exist yet).
func (r *Repo) ResolveRef(name string) (object.Hash, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, filepath.FromSlash(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("ref %s: %w", name, object.ErrNotFound)
		}
		return "", fmt.Errorf("resolve ref %s: %w", name, err)
	}

	target := strings.TrimSpace(string(data))
	if strings.HasPrefix(target, symrefPrefix) {
		return r.ResolveRef(strings.TrimPrefix(target, symrefPrefix))
	}

	h := object.Hash(target)
	if !h.Valid() {
		return "", fmt.Errorf("resolve ref %s: bad content %q", name, target)
	}
	return h, nil
}

// UpdateRef writes a hash into .git/<name>, creating parent directories as
// needed.
func (r *Repo) UpdateRef(name string, h object.Hash) error {
	if !h.Valid() {
		return fmt.Errorf("update ref %s: invalid hash %q", name, h)
	}
	path := filepath.Join(r.GitDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("update ref %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(string(h)+"\n"), 0o644); err != nil {
		return fmt.Errorf("update ref %s: %w", name, err)
	}
	return nil
}

// ListRefs returns every ref under .git/refs/<prefix>, sorted by name.
// An empty prefix lists all of refs/.
func (r *Repo) ListRefs(prefix string) ([]Ref, error) {
	root := filepath.Join(r.GitDir, "refs")
	dir := root
	if strings.TrimSpace(prefix) != "" {
		dir = filepath.Join(root, filepath.FromSlash(prefix))
	}

	var refs []Ref
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.GitDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		h, err := r.ResolveRef(name)
		if err != nil {
			return err
		}
		refs = append(refs, Ref{Name: name, Hash: h})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list refs: %w", err)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// ResolveName resolves a revision name to a hash. It accepts "HEAD", full
// hashes, short hash prefixes, tag names and branch names. Several distinct
// matches report an ambiguity carrying the candidates.
func (r *Repo) ResolveName(name string) (object.Hash, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("resolve name: empty revision")
	}
	if name == "HEAD" {
		return r.ResolveRef("HEAD")
	}

	var candidates []object.Hash
	add := func(h object.Hash) {
		for _, c := range candidates {
			if c == h {
				return
			}
		}
		candidates = append(candidates, h)
	}

	// Hash or hash prefix.
	if h, err := r.Store.Resolve(name); err == nil {
		add(h)
	} else if !errors.Is(err, object.ErrNotFound) {
		return "", err
	}

	// Tag, then branch.
	for _, refName := range []string{"refs/tags/" + name, "refs/heads/" + name} {
		if h, err := r.ResolveRef(refName); err == nil {
			add(h)
		} else if !errors.Is(err, object.ErrNotFound) {
			return "", err
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("resolve name %q: %w", name, object.ErrNotFound)
	case 1:
		return candidates[0], nil
	default:
		return "", &object.AmbiguousHashError{Prefix: name, Candidates: candidates}
	}
}
