package repo

import (
	"testing"

	"github.com/odvcencio/mingit/pkg/object"
)

func writeBlob(t *testing.T, r *Repo, data string) object.Hash {
	t.Helper()
	h, err := r.Store.Write(&object.Blob{Data: []byte(data)}, true)
	if err != nil {
		t.Fatalf("write blob: %v", err)
	}
	return h
}

func writeTree(t *testing.T, r *Repo, entries ...object.TreeEntry) object.Hash {
	t.Helper()
	h, err := r.Store.Write(&object.Tree{Entries: entries}, true)
	if err != nil {
		t.Fatalf("write tree: %v", err)
	}
	return h
}

func writeCommit(t *testing.T, r *Repo, tree object.Hash, message string, parents ...object.Hash) object.Hash {
	t.Helper()
	fields := object.Fields{{Key: "tree", Value: string(tree)}}
	for _, p := range parents {
		fields.Add("parent", string(p))
	}
	fields.Add("author", "Test <test@example.com> 1700000000 +0000")
	fields.Add("committer", "Test <test@example.com> 1700000000 +0000")

	h, err := r.Store.Write(&object.Commit{Fields: fields, Message: message}, true)
	if err != nil {
		t.Fatalf("write commit: %v", err)
	}
	return h
}
