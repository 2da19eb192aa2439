package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

func TestResolveTag(t *testing.T) {
	r := initTestRepo(t)
	want := object.Hash("ce013625030ba8dba906f756967f9e9ca394464a")

	// Trailing whitespace in the tag file is tolerated.
	tagPath := filepath.Join(r.GitDir, "refs", "tags", "release")
	if err := os.WriteFile(tagPath, []byte(string(want)+"\n"), 0o644); err != nil {
		t.Fatalf("write tag: %v", err)
	}

	h, ok, err := r.ResolveTag("release")
	if err != nil {
		t.Fatalf("ResolveTag: %v", err)
	}
	if !ok {
		t.Fatal("ResolveTag: ok=false for existing tag")
	}
	if h != want {
		t.Errorf("ResolveTag: got %s, want %s", h, want)
	}
}

func TestResolveTagMissing(t *testing.T) {
	r := initTestRepo(t)

	h, ok, err := r.ResolveTag("no-such-tag")
	if err != nil {
		t.Fatalf("ResolveTag: %v", err)
	}
	if ok || h != "" {
		t.Errorf("ResolveTag: got (%q, %v), want empty miss", h, ok)
	}
}
