package object

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// UnmarshalBlob deserializes raw bytes into a Blob (identity).
func UnmarshalBlob(payload []byte) (*Blob, error) {
	out := make([]byte, len(payload))
	copy(out, payload)
	return &Blob{Data: out}, nil
}

func (b *Blob) Marshal() ([]byte, error) {
	return MarshalBlob(b), nil
}

// ---------------------------------------------------------------------------
// Tree
// ---------------------------------------------------------------------------

func (t *Tree) Marshal() ([]byte, error) {
	return MarshalTree(t)
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

// MarshalCommit serializes a Commit in the key-value-list-with-message form.
func MarshalCommit(c *Commit) []byte {
	return encodeKVLM(c.Fields, c.Message)
}

// UnmarshalCommit parses a Commit and validates its required headers: "tree"
// exactly once with a syntactically valid digest, and zero or more "parent"
// headers, each a valid digest.
func UnmarshalCommit(payload []byte) (*Commit, error) {
	fields, message, err := parseKVLM(payload)
	if err != nil {
		return nil, fmt.Errorf("unmarshal commit: %w", err)
	}
	c := &Commit{Fields: fields, Message: message}

	if n := fields.Count("tree"); n != 1 {
		return nil, fmt.Errorf("unmarshal commit: %d tree headers, want 1: %w", n, ErrMalformedObject)
	}
	if !c.TreeHash().Valid() {
		return nil, fmt.Errorf("unmarshal commit: bad tree digest %q: %w", c.TreeHash(), ErrMalformedObject)
	}
	for _, p := range c.Parents() {
		if !p.Valid() {
			return nil, fmt.Errorf("unmarshal commit: bad parent digest %q: %w", p, ErrMalformedObject)
		}
	}
	return c, nil
}

func (c *Commit) Marshal() ([]byte, error) {
	return MarshalCommit(c), nil
}

// ---------------------------------------------------------------------------
// Tag
// ---------------------------------------------------------------------------

// MarshalTag serializes a Tag in the key-value-list-with-message form.
func MarshalTag(t *Tag) []byte {
	return encodeKVLM(t.Fields, t.Message)
}

// UnmarshalTag parses a Tag and validates that "object", "type", "tag" and
// "tagger" each occur exactly once.
func UnmarshalTag(payload []byte) (*Tag, error) {
	fields, message, err := parseKVLM(payload)
	if err != nil {
		return nil, fmt.Errorf("unmarshal tag: %w", err)
	}
	for _, key := range []string{"object", "type", "tag", "tagger"} {
		if n := fields.Count(key); n != 1 {
			return nil, fmt.Errorf("unmarshal tag: %d %q headers, want 1: %w", n, key, ErrMalformedObject)
		}
	}
	t := &Tag{Fields: fields, Message: message}
	if !t.Target().Valid() {
		return nil, fmt.Errorf("unmarshal tag: bad object digest %q: %w", t.Target(), ErrMalformedObject)
	}
	return t, nil
}

func (t *Tag) Marshal() ([]byte, error) {
	return MarshalTag(t), nil
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// Unmarshal decodes a payload according to its frame type keyword. The kind
// set is closed; anything else reports ErrUnknownType.
func Unmarshal(objType ObjectType, payload []byte) (Object, error) {
	switch objType {
	case TypeBlob:
		return UnmarshalBlob(payload)
	case TypeTree:
		return UnmarshalTree(payload)
	case TypeCommit:
		return UnmarshalCommit(payload)
	case TypeTag:
		return UnmarshalTag(payload)
	default:
		return nil, fmt.Errorf("type %q: %w", objType, ErrUnknownType)
	}
}
