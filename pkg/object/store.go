package object

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store is a content-addressed object store with a 2-character fan-out
// directory layout: objects/ab/cdef0123... Each file holds the
// zlib-compressed frame of one object.
//
// The store takes no locks. Racing writers of the same object are benign:
// identical content lands at the identical path via an atomic rename.
// Readers may observe a transient ErrNotFound for an in-progress write.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory. The objects/
// subdirectory is created lazily on first persisted write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a given hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	if !h.Valid() {
		return false
	}
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Write computes the hash of obj and, when persist is true, compresses and
// stores its frame. With persist false nothing touches disk, which gives
// callers dry-run hashing. Writing an object that is already present is a
// no-op; the hash is returned either way.
func (s *Store) Write(obj Object, persist bool) (Hash, error) {
	payload, err := obj.Marshal()
	if err != nil {
		return "", fmt.Errorf("object write: %w", err)
	}
	h := HashObject(obj.Type(), payload)
	if !persist || s.Has(h) {
		return h, nil
	}

	dir := filepath.Join(s.root, "objects", string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}

	// Atomic write via temp + rename.
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compress(Frame(obj.Type(), payload))); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write close: %w", err)
	}
	if err := os.Rename(tmpName, s.objectPath(h)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write rename: %w", err)
	}
	return h, nil
}

// Read retrieves and decodes the object with the given hash. The declared
// frame length is checked against the payload, but the hash itself is not
// recomputed on every read (trust on write); use Verify for that.
func (s *Store) Read(h Hash) (Object, error) {
	objType, payload, err := s.readFrame(h)
	if err != nil {
		return nil, err
	}
	obj, err := Unmarshal(objType, payload)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", h.Short(), err)
	}
	return obj, nil
}

// readFrame reads, decompresses and splits a stored frame into its type
// keyword and payload.
func (s *Store) readFrame(h Hash) (ObjectType, []byte, error) {
	if !h.Valid() {
		return "", nil, fmt.Errorf("object read: invalid hash %q: %w", h, ErrNotFound)
	}
	raw, err := os.ReadFile(s.objectPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("object %s: %w", h.Short(), ErrNotFound)
		}
		return "", nil, fmt.Errorf("object read %s: %w", h.Short(), err)
	}

	frame, err := decompress(raw)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", h.Short(), err)
	}

	// Split "type len\0payload".
	nulIdx := bytes.IndexByte(frame, 0)
	if nulIdx < 0 {
		return "", nil, fmt.Errorf("object %s: frame has no NUL: %w", h.Short(), ErrCorruptObject)
	}
	header := string(frame[:nulIdx])
	payload := frame[nulIdx+1:]

	typeKeyword, lenField, ok := strings.Cut(header, " ")
	if !ok {
		return "", nil, fmt.Errorf("object %s: bad frame header %q: %w", h.Short(), header, ErrCorruptObject)
	}
	declared, err := strconv.Atoi(lenField)
	if err != nil || declared != len(payload) {
		return "", nil, fmt.Errorf("object %s: declared length %q, payload %d bytes: %w",
			h.Short(), lenField, len(payload), ErrCorruptObject)
	}
	return ObjectType(typeKeyword), payload, nil
}

// Verify recomputes the object's hash from its stored frame and compares it
// to h. Reads skip this check; it exists as an explicit integrity pass.
func (s *Store) Verify(h Hash) error {
	objType, payload, err := s.readFrame(h)
	if err != nil {
		return err
	}
	if got := HashObject(objType, payload); got != h {
		return fmt.Errorf("object %s: content hashes to %s: %w", h.Short(), got.Short(), ErrCorruptObject)
	}
	return nil
}

// Resolve expands a hash prefix (at least one hex character) to the unique
// full hash it matches. Zero matches report ErrNotFound; several matches
// report an AmbiguousHashError carrying the candidates.
func (s *Store) Resolve(prefix string) (Hash, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || len(prefix) > 2*RawHashLen || !isHex(prefix) {
		return "", fmt.Errorf("resolve %q: not a hash prefix: %w", prefix, ErrNotFound)
	}

	if len(prefix) == 2*RawHashLen {
		h := Hash(prefix)
		if !s.Has(h) {
			return "", fmt.Errorf("resolve %s: %w", h.Short(), ErrNotFound)
		}
		return h, nil
	}

	candidates, err := s.scanPrefix(prefix)
	if err != nil {
		return "", err
	}
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("resolve %q: %w", prefix, ErrNotFound)
	case 1:
		return candidates[0], nil
	default:
		return "", &AmbiguousHashError{Prefix: prefix, Candidates: candidates}
	}
}

// scanPrefix lists every stored hash starting with prefix. A prefix of two
// or more characters names a single shard directory; a one-character prefix
// scans every shard whose name starts with it.
func (s *Store) scanPrefix(prefix string) ([]Hash, error) {
	objectsDir := filepath.Join(s.root, "objects")

	var shards []string
	if len(prefix) >= 2 {
		shards = []string{prefix[:2]}
	} else {
		entries, err := os.ReadDir(objectsDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("resolve %q: %w", prefix, err)
		}
		for _, e := range entries {
			if e.IsDir() && len(e.Name()) == 2 && strings.HasPrefix(e.Name(), prefix) {
				shards = append(shards, e.Name())
			}
		}
	}

	var candidates []Hash
	for _, shard := range shards {
		entries, err := os.ReadDir(filepath.Join(objectsDir, shard))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("resolve %q: %w", prefix, err)
		}
		for _, e := range entries {
			h := Hash(shard + e.Name())
			if h.Valid() && strings.HasPrefix(string(h), prefix) {
				candidates = append(candidates, h)
			}
		}
	}
	return candidates, nil
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// ReadBlob reads h and requires it to be a blob.
func (s *Store) ReadBlob(h Hash) (*Blob, error) {
	obj, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*Blob)
	if !ok {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h.Short(), obj.Type(), TypeBlob)
	}
	return b, nil
}

// ReadTree reads h and requires it to be a tree.
func (s *Store) ReadTree(h Hash) (*Tree, error) {
	obj, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	t, ok := obj.(*Tree)
	if !ok {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h.Short(), obj.Type(), TypeTree)
	}
	return t, nil
}

// ReadCommit reads h and requires it to be a commit.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	obj, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	c, ok := obj.(*Commit)
	if !ok {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h.Short(), obj.Type(), TypeCommit)
	}
	return c, nil
}

// ReadTag reads h and requires it to be an annotated tag.
func (s *Store) ReadTag(h Hash) (*Tag, error) {
	obj, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	t, ok := obj.(*Tag)
	if !ok {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h.Short(), obj.Type(), TypeTag)
	}
	return t, nil
}
