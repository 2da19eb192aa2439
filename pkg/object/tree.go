package object

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// TreeEntry is one entry in a tree object.
type TreeEntry struct {
	Mode string // 6-digit octal mode string
	Name string
	Hash Hash // blob or subtree hash
}

// IsDir reports whether the entry references a subtree.
func (e TreeEntry) IsDir() bool {
	return e.Mode == ModeDir
}

// sortKey implements the canonical entry ordering: names compare
// byte-wise, with directory names compared as though suffixed "/". This
// puts "foo.txt" before a directory "foo", which in turn sorts before
// "foo2".
func sortKey(e TreeEntry) string {
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// SortTreeEntries sorts entries in place into canonical tree order.
func SortTreeEntries(entries []TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return sortKey(entries[i]) < sortKey(entries[j])
	})
}

// MarshalTree serializes tree entries to the binary tree body: for each
// entry "<mode> <name>\0" followed by the 20 raw hash bytes. Entries are
// sorted canonically; duplicate names are rejected.
func MarshalTree(entries []TreeEntry) ([]byte, error) {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	SortTreeEntries(sorted)

	seen := make(map[string]struct{}, len(sorted))
	var buf bytes.Buffer
	for _, e := range sorted {
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("marshal tree: duplicate entry name %q", e.Name)
		}
		seen[e.Name] = struct{}{}

		raw, err := e.Hash.Raw()
		if err != nil {
			return nil, fmt.Errorf("marshal tree entry %q: %w", e.Name, err)
		}
		fmt.Fprintf(&buf, "%s %s\x00", e.Mode, e.Name)
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

// UnmarshalTree parses a binary tree body into its ordered entries.
func UnmarshalTree(data []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	rest := data
	for len(rest) > 0 {
		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, fmt.Errorf("unmarshal tree: %w: truncated entry header", ErrDecode)
		}
		mode, name, ok := strings.Cut(string(rest[:nul]), " ")
		if !ok || mode == "" || name == "" {
			return nil, fmt.Errorf("unmarshal tree: %w: malformed entry %q", ErrDecode, rest[:nul])
		}
		if len(rest) < nul+1+20 {
			return nil, fmt.Errorf("unmarshal tree: %w: truncated hash for entry %q", ErrDecode, name)
		}
		h, err := HashFromRaw(rest[nul+1 : nul+21])
		if err != nil {
			return nil, fmt.Errorf("unmarshal tree: %w: %v", ErrDecode, err)
		}
		entries = append(entries, TreeEntry{Mode: mode, Name: name, Hash: h})
		rest = rest[nul+21:]
	}
	return entries, nil
}
