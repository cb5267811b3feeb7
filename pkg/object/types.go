package object

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 40-character hex-encoded SHA-1 digest. Hashes are produced only
// by framing and digesting object payloads, never chosen by callers.
type Hash string

// RawHashLen is the length of a digest in raw (non-hex) bytes.
const RawHashLen = 20

// Valid reports whether h is exactly 40 lowercase hex characters.
func (h Hash) Valid() bool {
	if len(h) != 2*RawHashLen {
		return false
	}
	for _, c := range h {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// Short returns the conventional 7-character abbreviation of h.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h[:7])
}

// Raw decodes h into its 20 raw digest bytes.
func (h Hash) Raw() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("raw hash: invalid digest %q", h)
	}
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return nil, fmt.Errorf("raw hash: %w", err)
	}
	return raw, nil
}

// HashFromRaw converts 20 raw digest bytes to the hex Hash form.
func HashFromRaw(raw []byte) Hash {
	return Hash(hex.EncodeToString(raw))
}

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
	TypeTag    ObjectType = "tag"
)

const (
	// Tree mode constants matching Git's canonical on-disk mode strings.
	ModeDir        = "40000"
	ModeFile       = "100644"
	ModeExecutable = "100755"
	ModeSymlink    = "120000"
)

// Object is the closed set of storable object kinds: Blob, Tree, Commit
// and Tag.
type Object interface {
	Type() ObjectType
	Marshal() ([]byte, error)
}

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

func (*Blob) Type() ObjectType { return TypeBlob }

// TreeEntry is one entry in a tree object. Mode is the ASCII mode string
// exactly as it appeared on the wire (5 or 6 digits), Name is a single path
// component and Target the referenced object.
type TreeEntry struct {
	Mode   string
	Name   string
	Target Hash
}

// Tree holds an ordered list of tree entries. The order is exactly the order
// entries were parsed in; nothing reorders it implicitly (see
// SortTreeEntries for the canonical order applied when building new trees).
type Tree struct {
	Entries []TreeEntry
}

func (*Tree) Type() ObjectType { return TypeTree }

// Field is a single key/value header of a commit or tag.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered header list that tolerates repeated keys. It is a
// pair slice rather than a map so that iteration order is the insertion
// order and duplicates (e.g. "parent") survive round-trips.
type Fields []Field

// Get returns the first value stored under key.
func (fs Fields) Get(key string) (string, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// GetAll returns every value stored under key, in insertion order.
func (fs Fields) GetAll(key string) []string {
	var vals []string
	for _, f := range fs {
		if f.Key == key {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Count returns how many times key occurs.
func (fs Fields) Count(key string) int {
	n := 0
	for _, f := range fs {
		if f.Key == key {
			n++
		}
	}
	return n
}

// Add appends a field, preserving any existing values under the same key.
func (fs *Fields) Add(key, value string) {
	*fs = append(*fs, Field{Key: key, Value: value})
}

// Commit points at a tree with zero or more parents plus identity metadata.
// Headers live in Fields in wire order; Message is the free text after the
// blank separator line.
type Commit struct {
	Fields  Fields
	Message string
}

func (*Commit) Type() ObjectType { return TypeCommit }

// TreeHash returns the hash of the tree this commit snapshots.
func (c *Commit) TreeHash() Hash {
	v, _ := c.Fields.Get("tree")
	return Hash(v)
}

// Parents returns the parent commit hashes in stored order.
func (c *Commit) Parents() []Hash {
	vals := c.Fields.GetAll("parent")
	parents := make([]Hash, 0, len(vals))
	for _, v := range vals {
		parents = append(parents, Hash(v))
	}
	return parents
}

// Author returns the author identity line, if any.
func (c *Commit) Author() string {
	v, _ := c.Fields.Get("author")
	return v
}

// Committer returns the committer identity line, if any.
func (c *Commit) Committer() string {
	v, _ := c.Fields.Get("committer")
	return v
}

// GPGSig returns the detached signature block, if any.
func (c *Commit) GPGSig() string {
	v, _ := c.Fields.Get("gpgsig")
	return v
}

// Tag is an annotated tag: a named, attributed pointer at another object.
type Tag struct {
	Fields  Fields
	Message string
}

func (*Tag) Type() ObjectType { return TypeTag }

// Target returns the hash of the tagged object.
func (t *Tag) Target() Hash {
	v, _ := t.Fields.Get("object")
	return Hash(v)
}

// TargetType returns the kind of the tagged object.
func (t *Tag) TargetType() ObjectType {
	v, _ := t.Fields.Get("type")
	return ObjectType(v)
}

// Name returns the tag name.
func (t *Tag) Name() string {
	v, _ := t.Fields.Get("tag")
	return v
}

// Tagger returns the tagger identity line.
func (t *Tag) Tagger() string {
	v, _ := t.Fields.Get("tagger")
	return v
}
