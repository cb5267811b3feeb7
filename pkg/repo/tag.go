package repo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/odvcencio/mingit/pkg/object"
)

// CreateTag creates a lightweight tag: a ref under refs/tags/ pointing
// straight at target. Returns an error if the tag exists and force is false.
func (r *Repo) CreateTag(name string, target object.Hash, force bool) error {
	name = strings.TrimSpace(name)
	if err := validateTagName(name); err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	if !target.Valid() {
		return fmt.Errorf("create tag: invalid target %q", target)
	}

	refName := "refs/tags/" + name
	if !force {
		if _, err := r.ResolveRef(refName); err == nil {
			return fmt.Errorf("create tag: tag %q already exists", name)
		}
	}
	if err := r.UpdateRef(refName, target); err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// CreateAnnotatedTag stores a tag object pointing at target and creates a
// ref under refs/tags/ pointing at the tag object. The stored object's hash
// is returned.
func (r *Repo) CreateAnnotatedTag(name string, target object.Hash, tagger, message string, force bool) (object.Hash, error) {
	name = strings.TrimSpace(name)
	if err := validateTagName(name); err != nil {
		return "", fmt.Errorf("create annotated tag: %w", err)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("create annotated tag: message is required")
	}
	tagger = strings.TrimSpace(tagger)
	if tagger == "" {
		tagger = "unknown"
	}

	// The "type" header records what kind of object we point at.
	targetObj, err := r.Store.Read(target)
	if err != nil {
		return "", fmt.Errorf("create annotated tag: read target %s: %w", target.Short(), err)
	}

	refName := "refs/tags/" + name
	if !force {
		if _, err := r.ResolveRef(refName); err == nil {
			return "", fmt.Errorf("create annotated tag: tag %q already exists", name)
		}
	}

	now := time.Now()
	tag := &object.Tag{
		Fields: object.Fields{
			{Key: "object", Value: string(target)},
			{Key: "type", Value: string(targetObj.Type())},
			{Key: "tag", Value: name},
			{Key: "tagger", Value: fmt.Sprintf("%s %d %s", tagger, now.Unix(), now.Format("-0700"))},
		},
		Message: message + "\n",
	}

	tagHash, err := r.Store.Write(tag, true)
	if err != nil {
		return "", fmt.Errorf("create annotated tag: %w", err)
	}
	if err := r.UpdateRef(refName, tagHash); err != nil {
		return "", fmt.Errorf("create annotated tag: %w", err)
	}
	return tagHash, nil
}

// ListTags returns the tag names sorted alphabetically.
func (r *Repo) ListTags() ([]string, error) {
	refs, err := r.ListRefs("tags")
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, strings.TrimPrefix(ref.Name, "refs/tags/"))
	}
	sort.Strings(names)
	return names, nil
}

func validateTagName(name string) error {
	if name == "" {
		return fmt.Errorf("tag name is required")
	}
	if strings.ContainsAny(name, " \t\n~^:?*[\\") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid tag name %q", name)
	}
	return nil
}
