package object

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 40-character hex-encoded SHA-1 digest identifying a stored
// object. It is always the full hash; abbreviated ids only exist as
// lookup inputs, never inside objects.
type Hash string

// Raw returns the 20 raw digest bytes for h. Tree bodies embed hashes in
// this binary form rather than as hex text.
func (h Hash) Raw() ([]byte, error) {
	if len(h) != 40 {
		return nil, fmt.Errorf("hash %q: want 40 hex characters, got %d", h, len(h))
	}
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return nil, fmt.Errorf("hash %q: %w", h, err)
	}
	return raw, nil
}

// HashFromRaw converts 20 raw digest bytes back into a hex Hash.
func HashFromRaw(raw []byte) (Hash, error) {
	if len(raw) != 20 {
		return "", fmt.Errorf("raw hash: want 20 bytes, got %d", len(raw))
	}
	return Hash(hex.EncodeToString(raw)), nil
}

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

// ParseObjectType validates a type name read from an object header or a
// command-line flag.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case TypeBlob, TypeTree, TypeCommit:
		return ObjectType(s), nil
	default:
		return "", fmt.Errorf("unknown object type %q", s)
	}
}

// Canonical tree entry mode strings, 6-digit octal.
const (
	ModeDir        = "040000"
	ModeFile       = "100644"
	ModeExecutable = "100755"
	ModeSymlink    = "120000"
)

// Object is a fully decoded store object. Hash is the complete resolved
// id even when the object was looked up by an abbreviated prefix.
type Object struct {
	Type ObjectType
	Hash Hash
	Size int
	Body []byte
}
