package object

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means no object matches the given hash or prefix.
	ErrNotFound = errors.New("object not found")

	// ErrAmbiguousID means a short hash prefix matches more than one object.
	ErrAmbiguousID = errors.New("ambiguous object id prefix")

	// ErrCorruptObject means the stored bytes cannot be decompressed or the
	// frame's declared length does not match the payload.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrUnknownType means the frame carries a type keyword outside
	// blob/tree/commit/tag.
	ErrUnknownType = errors.New("unknown object type")

	// ErrMalformedObject means a commit or tag payload violates the
	// key-value-list grammar.
	ErrMalformedObject = errors.New("malformed object")

	// ErrMalformedTree means a tree payload ends mid-entry or is missing a
	// NUL separator.
	ErrMalformedTree = errors.New("malformed tree")
)

// AmbiguousHashError reports a prefix that matched several objects. It
// matches ErrAmbiguousID under errors.Is and carries the candidate list so
// callers can show it.
type AmbiguousHashError struct {
	Prefix     string
	Candidates []Hash
}

func (e *AmbiguousHashError) Error() string {
	shorts := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		shorts = append(shorts, c.Short())
	}
	return fmt.Sprintf("prefix %q is ambiguous: matches %s", e.Prefix, strings.Join(shorts, ", "))
}

func (e *AmbiguousHashError) Is(target error) bool {
	return target == ErrAmbiguousID
}
