package object

import (
	"bytes"
	"fmt"
	"sort"
)

// Tree payloads are binary: each entry is "mode SP name NUL raw20", packed
// with no further delimiters. The 20 trailing bytes are the raw digest, the
// one place the hex convention is abandoned for compactness.

// MarshalTree serializes a tree in the order its entries are stored.
// Re-serializing a parsed tree therefore reproduces the original bytes;
// callers building new trees apply SortTreeEntries first.
func MarshalTree(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range t.Entries {
		raw, err := e.Target.Raw()
		if err != nil {
			return nil, fmt.Errorf("marshal tree entry %q: %w", e.Name, err)
		}
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

// UnmarshalTree parses a tree payload, preserving entry order and the exact
// mode bytes seen on the wire.
func UnmarshalTree(payload []byte) (*Tree, error) {
	t := &Tree{}
	pos := 0
	for pos < len(payload) {
		rest := payload[pos:]

		spc := bytes.IndexByte(rest, ' ')
		if spc < 0 {
			return nil, fmt.Errorf("entry at offset %d: no space after mode: %w", pos, ErrMalformedTree)
		}
		mode := string(rest[:spc])
		if err := checkTreeMode(mode); err != nil {
			return nil, fmt.Errorf("entry at offset %d: %v: %w", pos, err, ErrMalformedTree)
		}

		nul := bytes.IndexByte(rest[spc+1:], 0)
		if nul < 0 {
			return nil, fmt.Errorf("entry at offset %d: no NUL after path: %w", pos, ErrMalformedTree)
		}
		name := string(rest[spc+1 : spc+1+nul])

		hashStart := pos + spc + 1 + nul + 1
		if hashStart+RawHashLen > len(payload) {
			return nil, fmt.Errorf("entry %q: truncated digest: %w", name, ErrMalformedTree)
		}

		t.Entries = append(t.Entries, TreeEntry{
			Mode:   mode,
			Name:   name,
			Target: HashFromRaw(payload[hashStart : hashStart+RawHashLen]),
		})
		pos = hashStart + RawHashLen
	}
	return t, nil
}

// checkTreeMode accepts 5- or 6-digit ASCII modes. The parsed bytes are kept
// verbatim so either width round-trips unchanged.
func checkTreeMode(mode string) error {
	if len(mode) < 5 || len(mode) > 6 {
		return fmt.Errorf("mode %q has %d digits, want 5 or 6", mode, len(mode))
	}
	for _, c := range mode {
		if c < '0' || c > '9' {
			return fmt.Errorf("mode %q contains non-digit", mode)
		}
	}
	return nil
}

// SortTreeEntries puts entries into Git's canonical order: byte comparison
// of names, where a directory's comparison key gets a trailing "/" appended.
// A directory "foo" thus sorts after a file "foo.txt".
func SortTreeEntries(entries []TreeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return treeSortKey(entries[i]) < treeSortKey(entries[j])
	})
}

func treeSortKey(e TreeEntry) string {
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// IsDir reports whether the entry references a subtree.
func (e TreeEntry) IsDir() bool {
	return e.Mode == ModeDir || e.Mode == "0"+ModeDir
}
