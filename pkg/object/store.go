package object

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store is a content-addressed object store with a 2-character fan-out
// directory layout: <dir>/ab/cdef0123...
//
// The objects directory is supplied by the caller; the store never
// locates it on its own.
type Store struct {
	dir string
}

// NewStore creates a Store over the given objects directory. Fan-out
// subdirectories are created lazily on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the objects directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.dir, string(h[:2]), string(h[2:]))
}

// Has reports whether an object with the given full hash is on disk. No
// prefix resolution; use Exists for abbreviated ids.
func (s *Store) Has(h Hash) bool {
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Write stores an object and returns its content hash. If an object with
// the same hash already exists the write is skipped entirely. Otherwise
// the compressed bytes go to a temp file in the destination directory and
// are renamed into place, so readers only ever observe complete objects.
func (s *Store) Write(objType ObjectType, body []byte) (Hash, error) {
	h, compressed, err := Encode(objType, body)
	if err != nil {
		return "", err
	}

	// Idempotent: same content means same bytes on disk already.
	if s.Has(h) {
		slog.Debug("object already stored", "hash", h)
		return h, nil
	}

	dir := filepath.Join(s.dir, string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compressed); err != nil {
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

	slog.Debug("object stored", "type", objType, "hash", h, "size", len(body))
	return h, nil
}

// Resolve expands a possibly-abbreviated object id to the full hash of
// the unique stored object it identifies. Ids shorter than 3 characters,
// ids with no match, and ids matching more than one object are errors.
func (s *Store) Resolve(id string) (Hash, error) {
	if len(id) < 3 {
		return "", fmt.Errorf("%w: %q is too short", ErrInvalidObjectID, id)
	}
	prefix, rest := id[:2], id[2:]

	// Exact match first; only a full 40-character id can hit this.
	exact := filepath.Join(s.dir, prefix, rest)
	if info, err := os.Stat(exact); err == nil && info.Mode().IsRegular() {
		return Hash(id), nil
	}

	dir := filepath.Join(s.dir, prefix)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrInvalidObjectID, id)
		}
		return "", fmt.Errorf("resolve %q: %w", id, err)
	}

	var match string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, rest) || strings.HasPrefix(name, ".tmp-") {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%w: %q", ErrAmbiguousObjectID, id)
		}
		match = name
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectID, id)
	}
	return Hash(prefix + match), nil
}

// Read retrieves an object by full or abbreviated id. The returned
// Object carries the full resolved hash, never the abbreviated input.
func (s *Store) Read(id string) (*Object, error) {
	h, err := s.Resolve(id)
	if err != nil {
		return nil, err
	}

	compressed, err := os.ReadFile(s.objectPath(h))
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", h, err)
	}
	objType, size, body, err := Decode(compressed)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", h, err)
	}
	return &Object{Type: objType, Hash: h, Size: size, Body: body}, nil
}

// Exists reports whether id resolves to exactly one stored object. Same
// resolution rules as Read, without decoding.
func (s *Store) Exists(id string) bool {
	_, err := s.Resolve(id)
	return err == nil
}

// ReadTyped reads an object and verifies its type.
func (s *Store) ReadTyped(id string, want ObjectType) (*Object, error) {
	obj, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if obj.Type != want {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", obj.Hash, obj.Type, want)
	}
	return obj, nil
}
